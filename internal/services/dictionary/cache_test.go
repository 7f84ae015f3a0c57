package dictionary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CachingOracleSuite struct {
	suite.Suite
	ctx     context.Context
	lookups map[string]int
	fail    bool
	oracle  *CachingOracle
}

func TestCachingOracleSuite(t *testing.T) {
	suite.Run(t, new(CachingOracleSuite))
}

func (s *CachingOracleSuite) SetupTest() {
	s.ctx = context.Background()
	s.lookups = map[string]int{}
	s.fail = false

	next := OracleFunc(func(ctx context.Context, word string) (bool, error) {
		s.lookups[word]++
		if s.fail {
			return false, errors.New("down")
		}
		return word == "CAT", nil
	})

	var err error
	s.oracle, err = NewCachingOracle(next, 2)
	s.Require().NoError(err)
}

func (s *CachingOracleSuite) TestCachesVerdicts() {
	for range 3 {
		valid, err := s.oracle.Lookup(s.ctx, "cat")
		s.Require().NoError(err)
		s.True(valid)
	}
	s.Equal(1, s.lookups["CAT"])

	valid, err := s.oracle.Lookup(s.ctx, "DOGX")
	s.Require().NoError(err)
	s.False(valid)
	s.Equal(2, s.oracle.Len())
}

func (s *CachingOracleSuite) TestFailuresAreNotCached() {
	s.fail = true
	_, err := s.oracle.Lookup(s.ctx, "CAT")
	s.Error(err)

	s.fail = false
	valid, err := s.oracle.Lookup(s.ctx, "CAT")
	s.Require().NoError(err)
	s.True(valid)
	s.Equal(2, s.lookups["CAT"])
}

func (s *CachingOracleSuite) TestEvictsLeastRecentlyUsed() {
	_, _ = s.oracle.Lookup(s.ctx, "A1")
	_, _ = s.oracle.Lookup(s.ctx, "A2")
	_, _ = s.oracle.Lookup(s.ctx, "A3")
	_, _ = s.oracle.Lookup(s.ctx, "A1")

	s.Equal(2, s.lookups["A1"])
	s.Equal(2, s.oracle.Len())
}

func (s *CachingOracleSuite) TestInvalidSize() {
	_, err := NewCachingOracle(s.oracle, 0)
	s.Error(err)
}

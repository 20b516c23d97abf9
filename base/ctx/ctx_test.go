package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ctxSuite struct {
	suite.Suite
}

func TestCtxSuite(t *testing.T) {
	suite.Run(t, new(ctxSuite))
}

func (s *ctxSuite) TestWithValue() {
	c := Background()
	c = WithValue(c, "requestId", "abc-123")
	s.Equal("abc-123", c.Value("requestId"))
}

func (s *ctxSuite) TestWithValues() {
	c := Background()
	c = WithValues(c, map[string]interface{}{
		"requestId": "abc-123",
		"address":   "0x5566",
	})
	s.Equal("abc-123", c.Value("requestId"))
	s.Equal("0x5566", c.Value("address"))
}

func (s *ctxSuite) TestWithTimeout() {
	c, cancel := WithTimeout(Background(), time.Millisecond)
	defer cancel()
	<-c.Done()
	s.Equal(context.DeadlineExceeded, c.Err())
}

func (s *ctxSuite) TestWithCancel() {
	c, cancel := WithCancel(Background())
	cancel()
	s.Equal(context.Canceled, c.Err())
}

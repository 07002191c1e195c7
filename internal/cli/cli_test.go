package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type CLITestSuite struct {
	suite.Suite
	mr *miniredis.Miniredis
}

func (s *CLITestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.T().Setenv("REDIS_ADDR", mr.Addr())
	s.T().Setenv("LOG_LEVEL", "error")
}

func (s *CLITestSuite) TearDownTest() {
	s.mr.Close()
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) run(args ...string) (string, error) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--config", s.T().TempDir()))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (s *CLITestSuite) TestHashKey() {
	out, err := s.run("hash-key", "hunter2")
	s.Require().NoError(err)

	hash := strings.TrimSpace(out)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter2")))
}

func (s *CLITestSuite) TestLedgerGiveThenBalance() {
	out, err := s.run("ledger", "give", "u1", "50")
	s.Require().NoError(err)
	s.Contains(out, "150 coins (+50)")

	out, err = s.run("ledger", "balance", "u1")
	s.Require().NoError(err)
	s.Contains(out, "balance\t150 coins")
}

func (s *CLITestSuite) TestLedgerSet() {
	out, err := s.run("ledger", "set", "u1", "2500")
	s.Require().NoError(err)
	s.Contains(out, "2,500 coins")
}

func (s *CLITestSuite) TestLedgerInvalidAmount() {
	_, err := s.run("ledger", "give", "u1", "lots")
	s.Error(err)
}

func (s *CLITestSuite) TestLedgerReset() {
	_, err := s.run("ledger", "give", "u1", "50")
	s.Require().NoError(err)

	_, err = s.run("ledger", "reset", "u1")
	s.Require().NoError(err)

	out, err := s.run("ledger", "balance", "u1")
	s.Require().NoError(err)
	s.Contains(out, "balance\t100 coins")
}

func (s *CLITestSuite) TestShopRoleLifecycle() {
	out, err := s.run("shop", "add-role", "r42", "VIP", "750", "--rarity", "epic")
	s.Require().NoError(err)
	s.Contains(out, "added")

	out, err = s.run("shop", "list")
	s.Require().NoError(err)
	s.Contains(out, "VIP")

	out, err = s.run("shop", "remove-role", "r42")
	s.Require().NoError(err)
	s.Contains(out, "removed")
}

func (s *CLITestSuite) TestServeRequiresToken() {
	s.T().Setenv("DISCORD_TOKEN", "")
	_, err := s.run("serve")
	s.Error(err)
}

package tests

import (
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}

func TestWebUI(t *testing.T) {
	suite.Run(t, &WebSuite{})
}

package tests

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/suite"

	sel "github.com/kickerlab/foosserver/tests/selectors"
)

const baseURL = "http://0.0.0.0:3000"

type WebSuite struct {
	suite.Suite
	process *Process
}

var (
	serverConfigPath string
	authConfigPath   string
	botConfigPath    string
)

func init() {
	flag.StringVar(&serverConfigPath, "server-config", "", "path to the server config")
	flag.StringVar(&authConfigPath, "auth-config", "", "path to the auth config")
	flag.StringVar(&botConfigPath, "bot-config", "", "path to the bot config")
}

func (s *WebSuite) SetupSuite() {
	if serverConfigPath == "" || authConfigPath == "" || botConfigPath == "" {
		s.T().Skip("-server-config, -auth-config and -bot-config must be set, skipping e2e suite")
	}
	p := NewProcess(context.Background(), "../bin/server",
		"-server-config", serverConfigPath,
		"-auth-config", authConfigPath,
		"-bot-config", botConfigPath)
	s.process = p
	err := p.Start(context.Background())
	if err != nil {
		s.T().Fatalf("can't start process: %v", err)
	}

	if err := waitForStartup(time.Second * 5); err != nil {
		stdout, stderr := p.Output()
		s.T().Logf("server stdout:\n%s\nserver stderr:\n%s", stdout, stderr)
		s.T().Fatalf("unable to start app: %v", err)
	}
}

func waitForStartup(duration time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	ticker := time.NewTicker(time.Second / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r, _ := http.Get(baseURL + "/")
			if r != nil && r.StatusCode == http.StatusOK {
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *WebSuite) TearDownSuite() {
	if s.process == nil {
		return
	}
	exitCode, err := s.process.Stop()
	if err != nil {
		s.T().Logf("can't stop process: %v", err)
	}
	s.T().Logf("process finished with code %d", exitCode)
	for _, f := range []string{"test_rating.sqlite", "test_auth.sqlite", "test_bot.sqlite"} {
		if err := os.Remove(f); err != nil && !os.IsNotExist(err) {
			s.T().Logf("can't remove %s: %v", f, err)
		}
	}
}

func (s *WebSuite) TestGuestAccess() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	ctx, cancelChrome := chromedp.NewContext(ctx)
	defer cancelChrome()

	var logo string
	err := chromedp.Run(ctx,
		s.checkGuestStatus(baseURL+"/api/matches", http.StatusForbidden),
		s.checkGuestStatus(baseURL+"/api/players", http.StatusForbidden),
		s.checkGuestStatus(baseURL+"/", http.StatusOK),
		s.checkGuestStatus(baseURL+"/api", http.StatusOK),
		s.checkGuestStatus(baseURL+"/api/matches-list", http.StatusOK),
		s.checkGuestStatus(baseURL+"/api/chart", http.StatusOK),
		s.checkGuestStatus(baseURL+"/signin", http.StatusOK),
		s.checkGuestStatus(baseURL+"/signout", http.StatusOK),
		s.checkGuestStatus(baseURL+"/signup", http.StatusOK),
		chromedp.Navigate(baseURL+"/"),
		chromedp.Text(sel.Logo, &logo),
	)
	if err != nil {
		s.T().Fatal(err.Error())
	}
	s.Equal("Kicker Lab", logo)
}

func (s *WebSuite) TestReportMatchAsRoot() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	ctx, cancelChrome := chromedp.NewContext(ctx)
	defer cancelChrome()

	err := chromedp.Run(ctx,
		chromedp.Navigate(baseURL+"/signin"),
		chromedp.SendKeys(sel.SignInFormUsername, "root"),
		chromedp.SendKeys(sel.SignInFormPass, "root-test-password"),
		chromedp.Click(sel.SignInFormSubmit),
		chromedp.WaitVisible(sel.Logo),

		chromedp.Navigate(baseURL+"/api/players"),
		chromedp.SendKeys(sel.NewPlayerFormName, "Alice"),
		chromedp.Click(sel.NewPlayerFormSubmit),
		chromedp.WaitVisible(sel.PlayerListRow),

		chromedp.Navigate(baseURL+"/api/matches"),
		chromedp.SendKeys(sel.NewMatchFormA1, "Alice"),
		chromedp.SendKeys(sel.NewMatchFormA2, "Bob"),
		chromedp.SendKeys(sel.NewMatchFormB1, "Carol"),
		chromedp.SendKeys(sel.NewMatchFormB2, "Dave"),
		chromedp.SendKeys(sel.NewMatchFormGoalsA, "10"),
		chromedp.SendKeys(sel.NewMatchFormGoalsB, "8"),
		chromedp.Click(sel.NewMatchFormSubmit),
		chromedp.WaitVisible(sel.PlayerListRow),
	)
	if err != nil {
		s.T().Fatal(err.Error())
	}

	var firstName string
	err = chromedp.Run(ctx,
		chromedp.Navigate(baseURL+"/api"),
		chromedp.Text(sel.PlayerListRowName, &firstName),
	)
	if err != nil {
		s.T().Fatal(err.Error())
	}
	s.NotEmpty(firstName)
}

func (s *WebSuite) checkGuestStatus(path string, want int) chromedp.Tasks {
	return []chromedp.Action{
		chromedp.ActionFunc(func(ctx context.Context) error {
			var resp *network.Response
			resp, err := chromedp.RunResponse(ctx,
				chromedp.Navigate(path))
			if err != nil {
				return err
			}
			if int(resp.Status) != want {
				s.T().Errorf("guest access to %s: want status %d, got %d", path, want, resp.Status)
			}
			return nil
		}),
	}
}

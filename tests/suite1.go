package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/suite"

	sel "github.com/sandcourt/beachrank/tests/selectors"
)

const (
	baseURL      = "http://0.0.0.0:3000"
	rootPassword = "test-root-pass" // root_password из test_configs/server.toml
	brandName    = "Пляжка-рейтинг"
)

type TestSuite1 struct {
	suite.Suite
	process *Process
}

var (
	serverConfigPath string
	botConfigPath    string
)

func init() {
	flag.StringVar(&serverConfigPath, "server-config", "", "path to server configs")
	flag.StringVar(&botConfigPath, "bot-config", "", "path to bot configs")
}

// SetupSuite собирает зависимости: поднимает сервер из ../bin/server
func (s *TestSuite1) SetupSuite() {
	fmt.Println("setupSuite")
	if serverConfigPath == "" || botConfigPath == "" {
		s.T().Skip("-server-config and -bot-config are not set, skipping e2e")
	}
	p := NewProcess(context.Background(), "../bin/server",
		"-server-config", serverConfigPath,
		"-bot-config", botConfigPath)
	s.process = p
	err := p.Start(context.Background())
	if err != nil {
		s.T().Errorf("cant start process: %v", err)
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

// TearDownSuite останавливает сервер и убирает тестовые базы
func (s *TestSuite1) TearDownSuite() {
	fmt.Println("teardown Suite1")
	exitCode, err := s.process.Stop()
	if err != nil {
		s.T().Logf("cant stop process: %v", err)
	}
	for _, f := range []string{"test_rating.sqlite", "test_auth.sqlite", "test_bot.sqlite"} {
		if err := os.Remove(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.T().Logf("cant remove %s: %v", f, err)
		}
	}
	s.T().Logf("process finished with code %d", exitCode)
}

func (s *TestSuite1) TestHandlers() {
	fmt.Println("test handlers")
	defer fmt.Println("test finished")

	ctx, cancelTimeout := context.WithTimeout(context.Background(), time.Second*10)
	defer cancelTimeout()

	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var logo string
	err := chromedp.Run(ctx,
		s.CheckGuestAccessDenied(baseURL+"/api/matches"),
		s.CheckGuestAccessDenied(baseURL+"/api/players"),
		s.CheckGuestAccessDenied(baseURL+"/api/import"),
		s.CheckGuestAccessDenied(baseURL+"/api/export"),
		s.CheckGuestAccessGranted(baseURL+"/"),
		s.CheckGuestAccessGranted(baseURL+"/api"),
		s.CheckGuestAccessGranted(baseURL+"/api/matches-list"),
		s.CheckGuestAccessGranted(baseURL+"/api/tournaments"),
		s.CheckGuestAccessGranted(baseURL+"/signin"),
		s.CheckGuestAccessGranted(baseURL+"/signout"),
		s.CheckGuestAccessGranted(baseURL+"/signup"),
		chromedp.Navigate(baseURL+"/"),
		chromedp.Text(sel.Logo, &logo),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if logo != brandName {
				err := errors.New("invalid logo text: " + logo)
				var screenShot []byte
				chromedp.FullScreenshot(&screenShot, 80).Do(ctx)
				if errW := os.WriteFile("invalid_logo.png", screenShot, 0o644); errW != nil {
					return errors.Join(errW, err)
				}
				return err
			}
			return nil
		}),
	)

	if err != nil {
		s.T().Fatal(err)
	}
	s.Equal(brandName, logo)
}

// TestSignIn входит под root и проверяет, что закрытые страницы открылись
func (s *TestSuite1) TestSignIn() {
	fmt.Println("test sign in")
	defer fmt.Println("test finished")

	ctx, cancelTimeout := context.WithTimeout(context.Background(), time.Second*15)
	defer cancelTimeout()

	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	err := chromedp.Run(ctx,
		chromedp.Navigate(baseURL+"/signin"),
		chromedp.WaitVisible(sel.SignInFormUsername),
		chromedp.SendKeys(sel.SignInFormUsername, "root"),
		chromedp.SendKeys(sel.SignInFormPass, rootPassword),
		chromedp.Click(sel.SignInFormSubmit),
		chromedp.WaitVisible(sel.NavSignOut),
		s.CheckAccessGranted(baseURL+"/api/matches"),
		s.CheckAccessGranted(baseURL+"/api/players"),
		s.CheckAccessGranted(baseURL+"/api/import"),
	)
	if err != nil {
		s.T().Fatal(err)
	}
}

func (s *TestSuite1) CheckGuestAccessDenied(path string) chromedp.Tasks {
	return []chromedp.Action{
		chromedp.ActionFunc(func(ctx context.Context) error {
			resp, err := chromedp.RunResponse(ctx,
				chromedp.Navigate(path))
			if err != nil {
				return err
			}
			if resp.Status != http.StatusForbidden {
				s.T().Errorf("Доступ к %s для гостей должен быть запрещен (статус 403), сервер ответил статусом %d", path, resp.Status)
			}
			return nil
		}),
	}
}

func (s *TestSuite1) CheckGuestAccessGranted(path string) chromedp.Tasks {
	return []chromedp.Action{
		chromedp.ActionFunc(func(ctx context.Context) error {
			resp, err := chromedp.RunResponse(ctx,
				chromedp.Navigate(path))
			if err != nil {
				return err
			}
			if resp.Status != http.StatusOK {
				s.T().Errorf("Доступ к %s для гостей должен быть разрешен (статус 200), сервер ответил статусом %d", path, resp.Status)
			}
			return nil
		}),
	}
}

func (s *TestSuite1) CheckAccessGranted(path string) chromedp.Tasks {
	return []chromedp.Action{
		chromedp.ActionFunc(func(ctx context.Context) error {
			resp, err := chromedp.RunResponse(ctx,
				chromedp.Navigate(path))
			if err != nil {
				return err
			}
			if resp.Status != http.StatusOK {
				s.T().Errorf("Доступ к %s после входа должен быть разрешен (статус 200), сервер ответил статусом %d", path, resp.Status)
			}
			return nil
		}),
	}
}

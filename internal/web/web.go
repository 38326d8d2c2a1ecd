package web

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/sirupsen/logrus"

	embedded "github.com/kickerlab/foosserver"
	authservice "github.com/kickerlab/foosserver/auth/service"
	"github.com/kickerlab/foosserver/auth/users"
	"github.com/kickerlab/foosserver/internal/config"
	"github.com/kickerlab/foosserver/internal/domain"
	"github.com/kickerlab/foosserver/internal/service"
	"github.com/kickerlab/foosserver/internal/web/webpath"
)

type Server struct {
	auth          *authservice.Service
	playerService *service.PlayerService
	app           *fiber.App
	cfg           config.Server
	log           *logrus.Entry
}

func New(ps *service.PlayerService, cfg config.Server, authService *authservice.Service, l *logrus.Logger) (*Server, error) {
	server := Server{
		playerService: ps,
		auth:          authService,
		cfg:           cfg,
		log:           l.WithField("from", "web"),
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)
	engine.AddFunc("inc", func(i int) int { return i + 1 })

	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(webpath.Api, func(c *fiber.Ctx) error {
		tokenCookie := c.Cookies("token")
		user, err := authService.Auth(c.Context(), tokenCookie, c.Method(), c.OriginalURL())
		if err != nil {
			switch {
			case errors.Is(err, authservice.ErrForbidden):
				c.Status(fiber.StatusForbidden)
			case errors.Is(err, authservice.ErrNotAuthorized):
				c.Status(fiber.StatusUnauthorized)
			default:
				c.Status(fiber.StatusInternalServerError)
			}
			return nil
		}
		c.Context().SetUserValue(userKey, user)
		return c.Next()
	})
	app.Get(webpath.Signin, server.handleGetSignIn)
	app.Post(webpath.Signin, server.handlePostSignIn)
	app.Get(webpath.Signup, server.handleGetSignup)
	app.Post(webpath.Signup, server.handlePostSignup)
	app.Get(webpath.Signout, server.handleSignOut)
	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.Api)
	})

	app.Get(webpath.ApiHome, server.handleMain)
	app.Get(webpath.ApiMatchesList, server.handleMatches)
	app.Get(webpath.ApiNewMatch, server.handleCreateMatchGet)
	app.Post(webpath.ApiNewMatch, server.handleCreateMatchPost)
	app.Get(webpath.ApiNewPlayer, server.handleNewPlayerGet)
	app.Post(webpath.ApiNewPlayer, server.handleNewPlayerPost)
	app.Get(webpath.ApiRatingChart, server.handleChart)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

const userKey = "user"

func currentUser(ctx *fiber.Ctx) users.User {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	return user
}

func (s *Server) handleMain(ctx *fiber.Ctx) error {
	leaderboard, err := s.playerService.Leaderboard(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.Render("index", newData("Leaderboard").
		WithUser(currentUser(ctx)).
		With("Button", "rating").
		With("Players", leaderboard),
		"layouts/main")
}

func (s *Server) handleMatches(ctx *fiber.Ctx) error {
	limit := parseHistoryLimit(ctx.Query("limit", ""), defaultMatchPageSize)
	matches, err := s.playerService.MatchHistory(ctx.Context(), limit)
	if err != nil {
		return err
	}
	return ctx.Render("matches", newData("Recent matches").
		WithUser(currentUser(ctx)).
		With("Button", "matches").
		With("Matches", matches),
		"layouts/main")
}

const defaultMatchPageSize = 20

func (s *Server) handleCreateMatchGet(ctx *fiber.Ctx) error {
	return ctx.Render("newMatch", newData("Report match").
		WithUser(currentUser(ctx)),
		"layouts/main")
}

func (s *Server) handleCreateMatchPost(ctx *fiber.Ctx) error {
	report, err := parseMatchReport(ctx)
	if err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return ctx.Render("newMatch", newData("Report match").
			WithUser(currentUser(ctx)).
			WithErrors(err),
			"layouts/main")
	}
	_, err = s.playerService.ReportMatch(ctx.Context(), report)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidMatch) {
			ctx.Status(fiber.StatusBadRequest)
			return ctx.Render("newMatch", newData("Report match").
				WithUser(currentUser(ctx)).
				WithErrors(err),
				"layouts/main")
		}
		return err
	}
	return ctx.Redirect(webpath.ApiHome)
}

func (s *Server) handleNewPlayerGet(ctx *fiber.Ctx) error {
	return ctx.Render("newPlayer", newData("Add player").
		WithUser(currentUser(ctx)),
		"layouts/main")
}

func (s *Server) handleNewPlayerPost(ctx *fiber.Ctx) error {
	err := s.playerService.RegisterPlayer(ctx.Context(), ctx.FormValue("name", ""))
	if err != nil {
		if errors.Is(err, service.ErrEmptyName) {
			ctx.Status(fiber.StatusBadRequest)
			return ctx.Render("newPlayer", newData("Add player").
				WithUser(currentUser(ctx)).
				WithErrors(err),
				"layouts/main")
		}
		return err
	}
	return ctx.Redirect(webpath.ApiHome)
}

// chartSeries is the shape the chart page's JS expects, one line per
// player.
type chartSeries struct {
	Name   string       `json:"name"`
	Points []chartPoint `json:"points"`
}

type chartPoint struct {
	Date   string `json:"date"`
	Rating int    `json:"rating"`
}

func (s *Server) handleChart(ctx *fiber.Ctx) error {
	history, err := s.playerService.RatingHistory(ctx.Context())
	if err != nil {
		return err
	}
	raw, err := json.Marshal(buildChartSeries(history))
	if err != nil {
		return err
	}
	return ctx.Render("chart", newData("Rating chart").
		WithUser(currentUser(ctx)).
		With("Button", "chart").
		With("Series", string(raw)),
		"layouts/main")
}

func buildChartSeries(history []domain.RatingSnapshot) []chartSeries {
	index := make(map[string]int)
	series := make([]chartSeries, 0)
	for _, snapshot := range history {
		i, ok := index[snapshot.PlayerName]
		if !ok {
			i = len(series)
			index[snapshot.PlayerName] = i
			series = append(series, chartSeries{Name: snapshot.PlayerName})
		}
		series[i].Points = append(series[i].Points, chartPoint{
			Date:   snapshot.CreatedAt.Format(time.RFC3339),
			Rating: snapshot.Rating,
		})
	}
	return series
}

func (s *Server) handleGetSignIn(ctx *fiber.Ctx) error {
	return ctx.Render("signin", newData("Sign in"), "layouts/main")
}

func (s *Server) handlePostSignIn(ctx *fiber.Ctx) error {
	req, err := parseSignInRequest(ctx)
	if err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return ctx.Render("signin", newData("Sign in").WithErrors(err), "layouts/main")
	}
	user, err := s.auth.Login(ctx.Context(), req.name, req.password)
	if err != nil {
		s.log.WithError(err).Info("login failed")
		ctx.Status(fiber.StatusUnauthorized)
		return ctx.Render("signin", newData("Sign in").
			WithErrors(errors.New("wrong username or password")),
			"layouts/main")
	}
	cookie, err := s.auth.GenerateJWTCookie(user.ID, s.cfg.Host)
	if err != nil {
		return err
	}
	ctx.Cookie(cookie)
	return ctx.Redirect(webpath.ApiHome)
}

func (s *Server) handleGetSignup(ctx *fiber.Ctx) error {
	return ctx.Render("signup", newData("Sign up"), "layouts/main")
}

func (s *Server) handlePostSignup(ctx *fiber.Ctx) error {
	req, err := parseSignUpRequest(ctx)
	if err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return ctx.Render("signup", newData("Sign up").WithErrors(err), "layouts/main")
	}
	err = s.auth.SignUp(ctx.Context(), req.name, req.password)
	if err != nil {
		return err
	}
	return ctx.Redirect(webpath.Signin)
}

func (s *Server) handleSignOut(ctx *fiber.Ctx) error {
	ctx.ClearCookie("token")
	return ctx.Redirect(webpath.ApiHome)
}

func formatDate(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

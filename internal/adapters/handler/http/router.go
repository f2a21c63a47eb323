package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

const requestTimeout = 60 * time.Second

type Handlers struct {
	Questions *QuestionHandler
	Answers   *AnswerHandler
	Votes     *VoteHandler
	Users     *UserHandler
	Profiles  *ProfileHandler
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

func NewHandler(log zerolog.Logger, auth *Authenticator, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(hlog.NewHandler(log))
	r.Use(hlog.RequestIDHandler("req_id", "X-Request-Id"))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"message": "welcome to the questions API"})
		})

		r.Route("/questions", func(r chi.Router) {
			r.Get("/", h.Questions.ListQuestions)
			r.Get("/{id}", h.Questions.GetQuestion)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireUser)
				r.Post("/", h.Questions.CreateQuestion)
				r.Put("/{id}", h.Questions.UpdateQuestion)
				r.Delete("/{id}", h.Questions.DeleteQuestion)
				r.Get("/{id}/my-vote", h.Questions.MyVote)
			})
		})

		r.Route("/answers", func(r chi.Router) {
			r.Get("/", h.Answers.ListAnswers)
			r.Get("/{id}", h.Answers.GetAnswer)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireUser)
				r.Put("/{id}", h.Answers.UpdateAnswer)
				r.Delete("/{id}", h.Answers.DeleteAnswer)
			})
		})

		r.Route("/votes", func(r chi.Router) {
			r.Get("/", h.Votes.ListVotes)
			r.Get("/{id}", h.Votes.GetVote)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireUser)
				r.Post("/", h.Votes.CastVote)
				r.Delete("/{id}", h.Votes.RetractVote)
			})
		})

		r.Route("/profiles", func(r chi.Router) {
			r.Get("/", h.Profiles.ListProfiles)
			r.With(auth.RequireUser).Get("/me", h.Profiles.MyProfile)
			r.Get("/{id}", h.Profiles.GetProfile)
			r.With(auth.RequireUser).Put("/{id}", h.Profiles.UpdateProfile)
		})

		r.With(auth.RequireUser).Get("/users/me", h.Users.GetMe)
	})

	return r
}

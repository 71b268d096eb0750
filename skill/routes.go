package skill

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Masterminds/semver/v3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/telekom/voice-skill-sdk/config"
	"github.com/telekom/voice-skill-sdk/intents"
	"github.com/telekom/voice-skill-sdk/internal/common/httpx"
	"github.com/telekom/voice-skill-sdk/internal/common/middleware"
	"github.com/telekom/voice-skill-sdk/internal/metrics"
	"github.com/telekom/voice-skill-sdk/responses"
	"github.com/telekom/voice-skill-sdk/services"
)

// MountHandlers sets up all HTTP routes and middleware for the skill:
// the invoke and info endpoints under the API base, the health probes and
// the Prometheus endpoint.
func (s *Skill) MountHandlers() {
	cfg := config.Config()

	s.Router.Use(middleware.RequestLogger)
	s.Router.Use(middleware.PanicHandler)
	s.Router.Use(middleware.SetTimeout(cfg.HTTP.GetRequestsTimeoutOrDefault()))
	if len(cfg.HTTP.CORSOrigins) > 0 {
		s.Router.Use(s.handleCORS)
	}
	if cfg.Metrics {
		s.Router.Use(metrics.Middleware)
	}

	s.Router.Route(cfg.GetAPIBase(), func(r chi.Router) {
		r.Use(s.authenticate)
		r.Method(http.MethodPost, "/", httpx.WrapHttpRsp(s.handleInvoke))
		r.Method(http.MethodGet, "/info", httpx.WrapHttpRsp(s.handleInfo))
	})

	s.Router.Get("/k8s/readiness", s.handleHealth)
	s.Router.Get("/k8s/liveness", s.handleHealth)
	if cfg.Metrics {
		s.Router.Handle("/prometheus", metrics.Handler())
	}
}

// handleInvoke serves POST {api_base}: it parses and validates the invoke
// request, resolves the locale translation and the intent handler, invokes
// the handler and renders the response in the wire format.
func (s *Skill) handleInvoke(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	ir := &intents.InvokeRequest{}
	if err := httpx.GetRequestData(r, ir); err != nil {
		return nil, err
	}
	if err := ir.Validate(); err != nil {
		return nil, err
	}
	if err := checkSPIVersion(ir.SPIVersion); err != nil {
		return nil, err
	}

	t := s.translations.ForLocale(ir.Context.Locale)
	req := intents.NewRequest(ir, t)

	intent, ok := s.GetIntent(ir.Context.Intent)
	if !ok {
		log.Ctx(ctx).Error().Str("intent", ir.Context.Intent).Msg("intent not found")
		return nil, intents.ErrIntentNotFound
	}

	rsp, err := intent.Invoke(ctx, req)
	if err != nil {
		var errRsp *responses.ErrorResponse
		if errors.As(err, &errRsp) {
			return &httpx.Response{StatusCode: errRsp.StatusCode(), Response: errRsp}, nil
		}
		if errors.Is(err, services.ErrRequestFailed) {
			log.Ctx(ctx).Warn().Err(err).Msg("partner service call failed")
			rsp = responses.TellMessage(t.GetText("GENERIC_HTTP_ERROR_RESPONSE"))
		} else {
			return nil, err
		}
	}

	body, err := rsp.Render(intent.Name, req.Session)
	if err != nil {
		return nil, err
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: body}, nil
}

// checkSPIVersion rejects requests whose SPI major version differs from the
// version this SDK implements. An absent version passes.
func checkSPIVersion(version string) error {
	if version == "" {
		return nil
	}
	requested, err := semver.NewVersion(version)
	if err != nil {
		return intents.ErrBadRequest.Msg(fmt.Sprintf("invalid SPI version %q", version))
	}
	if requested.Major() != semver.MustParse(SPIVersion).Major() {
		return intents.ErrBadRequest.Msg(fmt.Sprintf("unsupported SPI version %q", version))
	}
	return nil
}

// handleInfo serves GET {api_base}/info.
func (s *Skill) handleInfo(r *http.Request) (*httpx.Response, error) {
	log.Ctx(r.Context()).Debug().Msg("handling info request")

	cfg := config.Config()
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response: &responses.SkillInfoResponse{
			SkillID:          cfg.GetSkillID(),
			SkillVersion:     fmt.Sprintf("%d %s", cfg.Version, Version),
			SupportedLocales: s.translations.Locales(),
			SPIVersion:       SPIVersion,
		},
	}, nil
}

// handleHealth serves the readiness and liveness probes. The skill is ready
// once at least one intent handler is loaded.
func (s *Skill) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.intentCount() < 1 {
		httpx.SendJsonRsp(r.Context(), w, http.StatusTeapot, map[string]string{
			"text": "No intent handlers loaded!",
		})
		return
	}
	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, map[string]string{"text": "Ok"})
}

func (s *Skill) handleCORS(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   config.Config().HTTP.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Length", "Accept-Encoding"},
		AllowCredentials: false,
		MaxAge:           300,
	})(next)
}

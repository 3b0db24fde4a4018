package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/justsurfingit/breakout-talents/internal/config"
	"github.com/justsurfingit/breakout-talents/internal/dtos"
	"github.com/justsurfingit/breakout-talents/internal/forms"
	"github.com/justsurfingit/breakout-talents/internal/models"
	"github.com/justsurfingit/breakout-talents/internal/services"
	"github.com/justsurfingit/breakout-talents/internal/session"
	"github.com/justsurfingit/breakout-talents/internal/store/mocks"
	"github.com/justsurfingit/breakout-talents/internal/voice"
	"github.com/justsurfingit/breakout-talents/internal/voice/elevenlabs"
)

const (
	videoURL  = "https://www.youtube.com/watch?v=xvFZjo5PgG0"
	signedURL = "wss://api.elevenlabs.io/v1/convai/conversation?token=abc"
	agentID   = "agent_123"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// browser replays the visitor cookie like a real browser would.
type browser struct {
	t      *testing.T
	r      *gin.Engine
	cookie *http.Cookie
}

func (b *browser) request(method, target, contentType string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("User-Agent", "handlers-test/1.0")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}
	return req
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	b.r.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			b.cookie = c
		}
	}
	return w
}

func (b *browser) get(target string) *httptest.ResponseRecorder {
	return b.do(b.request(http.MethodGet, target, "", nil))
}

func (b *browser) postForm(target string, v url.Values) *httptest.ResponseRecorder {
	return b.do(b.request(http.MethodPost, target, "application/x-www-form-urlencoded", strings.NewReader(v.Encode())))
}

func (b *browser) postJSON(target string, body any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	require.NoError(b.t, err)
	return b.do(b.request(http.MethodPost, target, "application/json", strings.NewReader(string(raw))))
}

func newSignedURLServer(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, agentID, r.URL.Query().Get("agent_id"))
		assert.Equal(t, "test-key", r.Header.Get("xi-api-key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"signed_url":"`+signedURL+`"}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newBrowser(t *testing.T, inserter *mocks.MockInserter) *browser {
	t.Helper()
	voiceAPI := newSignedURLServer(t)
	cfg := config.Config{
		SiteOrigin:         "https://breakouttalents.com",
		VideoURL:           videoURL,
		SessionTTL:         time.Hour,
		CORSAllowedOrigins: []string{"*"},
		ElevenLabsAPIKey:   "test-key",
		ElevenLabsAgentID:  agentID,
		ElevenLabsBaseURL:  voiceAPI.URL,
	}
	voiceClient := elevenlabs.NewClient(voiceAPI.URL, "test-key", 600)
	subs := services.NewSubmissionService(inserter, nil)
	sessions := session.NewStore(cfg.SessionTTL, subs.NewForm, func() *voice.Controller {
		return voice.NewController(voiceClient.NewSession(), agentID)
	})
	return &browser{t: t, r: NewRouter(cfg, sessions)}
}

func TestHome_DefaultsToTalents(t *testing.T) {
	b := newBrowser(t, mocks.NewMockInserter(gomock.NewController(t)))

	w := b.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<title>BreakoutTalents – AI HeadHunter for German Startup Jobs</title>")
	assert.Contains(t, body, `id="talent-form"`)
	assert.NotContains(t, body, `id="startup-form"`)
	require.NotNil(t, b.cookie)
	assert.True(t, b.cookie.HttpOnly)
}

func TestHome_TogglePreservesTalentValues(t *testing.T) {
	// No Insert expectation: a draft never reaches the store.
	b := newBrowser(t, mocks.NewMockInserter(gomock.NewController(t)))
	home := b.get("/").Body.String()
	assert.Contains(t, home, `form="talent-form" formaction="/talent/draft?audience=startups"`)

	w := b.postForm("/talent/draft?audience=startups", url.Values{"role": {"Engineer"}, "linkedin_url": {"https://linkedin.com/in/ada"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?audience=startups", w.Header().Get("Location"))

	startups := b.get("/?audience=startups").Body.String()
	assert.Contains(t, startups, `id="startup-form"`)
	assert.NotContains(t, startups, `id="talent-form"`)
	assert.Contains(t, startups, `form="startup-form" formaction="/startup/draft?audience=talents"`)

	w = b.postForm("/startup/draft?audience=talents", url.Values{"jd_link": {"https://acme.com/jobs/1"}, "email": {""}})
	assert.Equal(t, "/?audience=talents", w.Header().Get("Location"))

	talents := b.get("/?audience=talents").Body.String()
	assert.Contains(t, talents, `value="Engineer"`)
	assert.Contains(t, talents, `value="https://linkedin.com/in/ada"`)
	assert.NotContains(t, talents, "data-error")

	startups = b.get("/?audience=startups").Body.String()
	assert.Contains(t, startups, `value="https://acme.com/jobs/1"`)
}

func TestHome_InvalidSubmitSurvivesToggle(t *testing.T) {
	b := newBrowser(t, mocks.NewMockInserter(gomock.NewController(t)))
	b.get("/")

	w := b.postForm("/talent", url.Values{"role": {"Engineer"}, "linkedin_url": {"https://example.com/me"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?audience=talents", w.Header().Get("Location"))

	b.get("/?audience=startups")
	talents := b.get("/?audience=talents").Body.String()
	assert.Contains(t, talents, `value="Engineer"`)
	assert.Contains(t, talents, `value="https://example.com/me"`)
	assert.Contains(t, talents, `data-error="domain_mismatch"`)
}

func TestHome_RoleChipFillsOnlyRole(t *testing.T) {
	b := newBrowser(t, mocks.NewMockInserter(gomock.NewController(t)))
	home := b.get("/").Body.String()
	assert.Contains(t, home, `formaction="/talent/draft?audience=talents&amp;role=GTM+Manager"`)

	w := b.postForm("/talent/draft?audience=talents&role=GTM+Manager", url.Values{"role": {"Eng"}, "linkedin_url": {"https://linkedin.com/in/ada"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	body := b.get(w.Header().Get("Location")).Body.String()
	assert.Contains(t, body, `value="GTM Manager"`)
	assert.Contains(t, body, `value="https://linkedin.com/in/ada"`)
	assert.Contains(t, body, `href="/apply?role=GTM+Manager"`)
}

func TestSubmitTalentForm_SuccessInsertsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockInserter(ctrl)
	m.EXPECT().
		Insert(gomock.Any(), forms.TableTalentSubmissions, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload any) error {
			rec := payload.(*models.TalentSubmission)
			assert.Equal(t, "Engineer", rec.Role)
			assert.Equal(t, "https://www.linkedin.com/in/ada", rec.LinkedinURL)
			assert.Equal(t, "handlers-test/1.0", rec.UserAgent)
			return nil
		}).
		Times(1)

	b := newBrowser(t, m)
	b.get("/")
	w := b.postForm("/talent", url.Values{"role": {"  Engineer "}, "linkedin_url": {"https://www.linkedin.com/in/ada"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	body := b.get("/?audience=talents").Body.String()
	assert.Contains(t, body, `data-variant="default"`)
	assert.Contains(t, body, "Submitted")
	assert.NotContains(t, body, `value="Engineer"`)

	// Flashes are shown once.
	assert.NotContains(t, b.get("/").Body.String(), `id="toasts"`)
}

func TestSubmitReferralForm_FailureKeepsValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockInserter(ctrl)
	m.EXPECT().
		Insert(gomock.Any(), forms.TableReferrals, gomock.Any()).
		Return(errors.New("duplicate key value violates unique constraint")).
		Times(1)

	b := newBrowser(t, m)
	b.get("/refer")
	w := b.postForm("/refer", url.Values{
		"email":         {"Me@Example.com"},
		"linkedin_url":  {"https://linkedin.com/in/jane"},
		"talent_reason": {"Built three products"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	body := b.get("/refer").Body.String()
	assert.Contains(t, body, `data-variant="destructive"`)
	assert.Contains(t, body, "Submission failed")
	assert.Contains(t, body, "duplicate key value violates unique constraint")
	assert.Contains(t, body, `value="https://linkedin.com/in/jane"`)
	assert.Contains(t, body, "Built three products")
}

func TestAPI_ValidationReturns422(t *testing.T) {
	b := newBrowser(t, mocks.NewMockInserter(gomock.NewController(t)))

	w := b.postJSON("/api/v1/talent-submissions", dtos.TalentSubmissionRequest{LinkedInURL: "not a url"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp dtos.SubmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Role is required", resp.FieldErrors["role"])
	assert.Equal(t, "Enter a valid LinkedIn URL", resp.FieldErrors["linkedin_url"])
}

func TestAPI_CreatedThenBadGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockInserter(ctrl)
	gomock.InOrder(
		m.EXPECT().Insert(gomock.Any(), forms.TableStartupSubmissions, gomock.Any()).Return(nil),
		m.EXPECT().Insert(gomock.Any(), forms.TableStartupSubmissions, gomock.Any()).Return(errors.New("connection refused")),
	)

	b := newBrowser(t, m)
	req := dtos.StartupSubmissionRequest{JDLink: "https://acme.de/jobs/1", Email: "cto@acme.de"}

	w := b.postJSON("/api/v1/startup-submissions", req)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dtos.SubmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Success)

	w = b.postJSON("/api/v1/startup-submissions", req)
	require.Equal(t, http.StatusBadGateway, w.Code)
	var failed dtos.SubmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &failed))
	assert.Equal(t, "connection refused", failed.Error)
	assert.Equal(t, "Submission failed", failed.Title)
}

func TestAPI_SecondSubmitWhileInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockInserter(ctrl)
	started := make(chan struct{})
	release := make(chan struct{})
	m.EXPECT().
		Insert(gomock.Any(), forms.TableReferrals, gomock.Any()).
		DoAndReturn(func(context.Context, string, any) error {
			close(started)
			<-release
			return nil
		}).
		Times(1)

	b := newBrowser(t, m)
	b.get("/api/v1/health")
	require.NotNil(t, b.cookie)

	body := dtos.ReferralRequest{Email: "me@example.com", LinkedInURL: "https://linkedin.com/in/jane", TalentReason: "Fast"}
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	var wg sync.WaitGroup
	first := httptest.NewRecorder()
	wg.Add(1)
	go func() {
		defer wg.Done()
		b.r.ServeHTTP(first, b.request(http.MethodPost, "/api/v1/referrals", "application/json", strings.NewReader(string(raw))))
	}()

	<-started
	second := httptest.NewRecorder()
	b.r.ServeHTTP(second, b.request(http.MethodPost, "/api/v1/referrals", "application/json", strings.NewReader(string(raw))))
	assert.Equal(t, http.StatusConflict, second.Code)

	close(release)
	wg.Wait()
	assert.Equal(t, http.StatusCreated, first.Code)
}

func TestAPI_BadJSON(t *testing.T) {
	b := newBrowser(t, mocks.NewMockInserter(gomock.NewController(t)))
	w := b.do(b.request(http.MethodPost, "/api/v1/referrals", "application/json", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApply_RoleFromQueryThroughVoiceStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockInserter(ctrl)
	m.EXPECT().
		Insert(gomock.Any(), forms.TableTalentSubmissions, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload any) error {
			assert.Equal(t, "Product Manager", payload.(*models.TalentSubmission).Role)
			return nil
		})

	b := newBrowser(t, m)
	body := b.get("/apply?role=Product+Manager").Body.String()
	assert.Contains(t, body, `<input type="hidden" name="role" value="Product Manager">`)
	assert.Contains(t, body, "<title>Apply - BreakoutTalents</title>")

	w := b.postForm("/apply", url.Values{"first_name": {"Ada"}, "linkedin_url": {"https://linkedin.com/in/ada"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/apply/voice", w.Header().Get("Location"))

	voicePage := b.get("/apply/voice").Body.String()
	assert.Contains(t, voicePage, "Thanks, Ada!")
	assert.Contains(t, voicePage, "Application submitted!")
	assert.Contains(t, voicePage, `id="voice-widget"`)
}

func TestApply_RoleFallsBackToTalentForm(t *testing.T) {
	b := newBrowser(t, mocks.NewMockInserter(gomock.NewController(t)))
	b.get("/?audience=talents&role=Engineer")

	body := b.get("/apply").Body.String()
	assert.Contains(t, body, `<input type="hidden" name="role" value="Engineer">`)
	assert.Contains(t, body, "Applying for ")
}

func TestApply_MissingRoleBlocksSubmit(t *testing.T) {
	b := newBrowser(t, mocks.NewMockInserter(gomock.NewController(t)))
	b.get("/apply")

	w := b.postForm("/apply", url.Values{"first_name": {"Ada"}, "linkedin_url": {"https://linkedin.com/in/ada"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/apply", w.Header().Get("Location"))
	assert.Contains(t, b.get("/apply").Body.String(), "Role is required")
}

func TestApplyVoice_RequiresStepOne(t *testing.T) {
	b := newBrowser(t, mocks.NewMockInserter(gomock.NewController(t)))
	w := b.get("/apply/voice")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/apply", w.Header().Get("Location"))
}

func voiceStatus(t *testing.T, b *browser) dtos.VoiceStatusResponse {
	t.Helper()
	w := b.get("/api/v1/voice/status")
	require.Equal(t, http.StatusOK, w.Code)
	var out dtos.VoiceStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestVoice_StartReportStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockInserter(ctrl)
	m.EXPECT().Insert(gomock.Any(), forms.TableTalentSubmissions, gomock.Any()).Return(nil)

	b := newBrowser(t, m)
	b.get("/apply?role=Engineer")
	b.postForm("/apply", url.Values{"first_name": {"Ada"}, "linkedin_url": {"https://linkedin.com/in/ada"}})

	w := b.postForm("/apply/voice/start", url.Values{"mic_granted": {"false"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, b.get("/apply/voice").Body.String(), "Microphone access is required")
	assert.Equal(t, string(voice.StatusDisconnected), voiceStatus(t, b).Status)

	b.postForm("/apply/voice/start", url.Values{"mic_granted": {"true"}})
	st := voiceStatus(t, b)
	assert.Equal(t, string(voice.StatusConnecting), st.Status)
	assert.Equal(t, signedURL, st.SignedURL)
	assert.False(t, st.CanStart)
	assert.False(t, st.CanStop)

	w = b.postJSON("/api/v1/voice/events", dtos.VoiceEventRequest{Status: "connected", IsSpeaking: true})
	require.Equal(t, http.StatusOK, w.Code)
	st = voiceStatus(t, b)
	assert.Equal(t, string(voice.StatusConnected), st.Status)
	assert.True(t, st.IsSpeaking)
	assert.True(t, st.CanStop)

	page := b.get("/apply/voice").Body.String()
	assert.Contains(t, page, "Agent is speaking")

	b.postForm("/apply/voice/stop", nil)
	st = voiceStatus(t, b)
	assert.Equal(t, string(voice.StatusDisconnected), st.Status)
	assert.True(t, st.CanStart)
}

func TestVoice_StopWithoutSession(t *testing.T) {
	b := newBrowser(t, mocks.NewMockInserter(gomock.NewController(t)))
	b.get("/")
	b.postForm("/apply/voice/stop", nil)
	assert.Contains(t, b.get("/").Body.String(), "There is no conversation to end.")
}

func TestVoice_EventsRejectUnknownStatus(t *testing.T) {
	b := newBrowser(t, mocks.NewMockInserter(gomock.NewController(t)))
	w := b.postJSON("/api/v1/voice/events", map[string]any{"status": "ringing"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVideoRedirects(t *testing.T) {
	b := newBrowser(t, mocks.NewMockInserter(gomock.NewController(t)))
	for _, path := range []string{"/video", "/demo"} {
		w := b.get(path)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, videoURL, w.Header().Get("Location"), path)
	}
}

func TestHealthAndStatic(t *testing.T) {
	b := newBrowser(t, mocks.NewMockInserter(gomock.NewController(t)))

	w := b.get("/api/v1/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = b.get("/static/site.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "--primary")
}

func TestPrivacyPage(t *testing.T) {
	b := newBrowser(t, mocks.NewMockInserter(gomock.NewController(t)))
	w := b.get("/privacy")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<link rel="canonical" href="https://breakouttalents.com/privacy">`)
}

func TestSitemap_ListsOpenPages(t *testing.T) {
	b := newBrowser(t, mocks.NewMockInserter(gomock.NewController(t)))
	w := b.get("/sitemap.xml")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "xml")

	body := w.Body.String()
	assert.Contains(t, body, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, body, "<url><loc>https://breakouttalents.com/</loc></url>")
	assert.Contains(t, body, "<loc>https://breakouttalents.com/refer</loc>")
	assert.NotContains(t, body, "/apply/voice")
}

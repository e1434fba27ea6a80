package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"saicollege/internal/api/handlers"
	"saicollege/internal/chatbot"
	"saicollege/internal/metrics"
	"saicollege/internal/models"
	"saicollege/internal/repository"
	"saicollege/internal/service"
	"saicollege/pkg/auth"
	"saicollege/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testPassword = "start-password"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dir := t.TempDir()
	logger := zap.NewNop()
	ctx := context.Background()
	path := func(name string) string { return filepath.Join(dir, name) }

	kbRepo := repository.NewKnowledgeFileRepository(path("college_data.json"), logger)
	require.NoError(t, kbRepo.Save(ctx, &models.KnowledgeBase{
		Name:       "Sai College",
		Phone:      "0788-2222222",
		Facilities: map[string]string{"library": "20,000 books"},
		UGCourses: models.CourseList{
			{Name: "BCA", Duration: "3 Years", Fee: "₹22,000/year", Description: "Computer applications"},
			{Name: "BA", Duration: "3 Years", Fee: "₹8,000/year", Description: "Arts"},
		},
	}))

	queries := repository.NewUnresolvedQueryFileRepository(path("unknown_queries.csv"), logger)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	chatMetrics := metrics.NewChat()

	knowledge := service.NewKnowledgeService(kbRepo, logger)
	knowledge.Reload(ctx)

	authService := service.NewAuthService(
		repository.NewAdminFileRepository(path("admin_config.json"), logger),
		repository.NewActivityLogRepository(path("admin_activity_logs.csv")),
		jwtManager,
		&config.AdminConfig{
			MaxAttempts:       5,
			BlockWindow:       time.Minute,
			DefaultUsername:   "Admin",
			DefaultPassword:   testPassword,
			DefaultSecretCode: "MasterKey2024",
		},
		logger,
	)
	require.NoError(t, authService.EnsureAccount(ctx))

	chatService := service.NewChatService(
		chatbot.NewResolver(queries, logger),
		knowledge,
		repository.NewChatLogRepository(path("chat_logs.csv")),
		chatMetrics,
		logger,
	)
	feedbackService := service.NewFeedbackService(repository.NewFeedbackFileRepository(path("feedback.json"), logger), logger)
	queryService := service.NewQueryService(queries, logger)
	uploadService := service.NewUploadService(
		repository.NewSyllabusFileRepository(path("syllabus_metadata.json"), logger),
		repository.NewGalleryFileRepository(path("gallery_metadata.json"), logger),
		path("pdfs"), path("gallery"), logger,
	)

	sessions := session.New(session.Config{KeyLookup: "cookie:saicollege_session"})

	return SetupRouter(
		&config.ServerConfig{BodyLimit: 1 << 20, StaticDir: path("static")},
		handlers.NewChatHandler(chatService, sessions, logger),
		handlers.NewPublicHandler(knowledge, feedbackService, uploadService, logger),
		handlers.NewAdminHandler(authService, knowledge, feedbackService, queryService, false, logger),
		handlers.NewUploadHandler(uploadService, logger),
		jwtManager,
		chatMetrics.Handler(),
		logger,
	)
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any, cookies ...*http.Cookie) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp, decode(t, resp)
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return out
}

func cookieNamed(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func login(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	resp, body := doJSON(t, app, "POST", "/admin/login", map[string]string{"username": "Admin", "password": testPassword})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["success"])

	cookie := cookieNamed(resp, "admin_token")
	require.NotNil(t, cookie)
	return cookie
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "GET", "/health", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestChat(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "POST", "/chat", map[string]string{"message": "bca fees"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body["response"], "₹22,000/year")

	resp, body = doJSON(t, app, "POST", "/chat", map[string]string{"message": "hello"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["response"])

	req := httptest.NewRequest("POST", "/chat", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	bad, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, bad.StatusCode)
}

func TestSetLanguage(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "POST", "/set-language", map[string]string{"language": "English"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, chatbot.WelcomeMessage(chatbot.English), body["message"])
	assert.NotNil(t, cookieNamed(resp, "saicollege_session"))

	_, body = doJSON(t, app, "POST", "/set-language", map[string]string{"language": "Klingon"})
	assert.Equal(t, chatbot.WelcomeMessage(chatbot.Hinglish), body["message"])
}

func TestChatUsesSessionLanguage(t *testing.T) {
	app := newTestApp(t)

	_, body := doJSON(t, app, "POST", "/chat", map[string]string{"message": "hello"})
	assert.Equal(t, chatbot.Greeting(chatbot.Hinglish), body["response"], "fresh session")

	resp, _ := doJSON(t, app, "POST", "/set-language", map[string]string{"language": "English"})
	sess := cookieNamed(resp, "saicollege_session")
	require.NotNil(t, sess)

	_, body = doJSON(t, app, "POST", "/chat", map[string]string{"message": "hello"}, sess)
	assert.Equal(t, chatbot.Greeting(chatbot.English), body["response"])

	_, body = doJSON(t, app, "POST", "/chat", map[string]string{"message": "hello"})
	assert.Equal(t, chatbot.Greeting(chatbot.Hinglish), body["response"], "other visitors keep the default")

	_, body = doJSON(t, app, "POST", "/set-language", map[string]string{"language": "Hindi"}, sess)
	assert.Equal(t, chatbot.WelcomeMessage(chatbot.Hindi), body["message"])

	_, body = doJSON(t, app, "POST", "/chat", map[string]string{"message": "hello"}, sess)
	assert.Equal(t, chatbot.Greeting(chatbot.Hindi), body["response"])
}

func TestPublicAPI(t *testing.T) {
	app := newTestApp(t)

	_, info := doJSON(t, app, "GET", "/api/college-info", nil)
	assert.Equal(t, "Sai College", info["name"])
	assert.Equal(t, "0788-2222222", info["phone"])

	resp, err := app.Test(httptest.NewRequest("GET", "/api/courses", nil), -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Less(t, strings.Index(string(raw), `"BCA"`), strings.Index(string(raw), `"BA"`), "stored course order is kept")
	assert.Contains(t, string(raw), `"diploma":{}`)

	_, facilities := doJSON(t, app, "GET", "/api/facilities", nil)
	assert.Equal(t, "20,000 books", facilities["library"])

	_, syllabus := doJSON(t, app, "GET", "/api/syllabus", nil)
	assert.Equal(t, []any{}, syllabus["files"])
}

func TestFeedbackFlow(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/feedback", map[string]any{"type": "bug", "message": "chat is slow"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "rating is required")

	resp, body := doJSON(t, app, "POST", "/feedback", map[string]any{"type": "bug", "message": "chat is slow", "rating": 3})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	cookie := login(t, app)
	_, body = doJSON(t, app, "GET", "/admin/feedback", nil, cookie)
	list := body["feedback"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "new", list[0].(map[string]any)["status"])

	resp, _ = doJSON(t, app, "POST", "/admin/update-status", map[string]any{"type": "feedback", "index": "0", "status": "read"}, cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/admin/update-status", map[string]any{"type": "feedback", "index": 4, "status": "read"}, cookie)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/admin/update-status", map[string]any{"type": "other", "index": 0, "status": "read"}, cookie)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/admin/update-status", map[string]any{"type": "feedback", "index": "x", "status": "read"}, cookie)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAdminRequiresToken(t *testing.T) {
	app := newTestApp(t)

	for _, target := range []string{"/admin/college-data", "/admin/feedback", "/admin/unknown-queries", "/admin/stats", "/admin/pdfs"} {
		resp, _ := doJSON(t, app, "GET", target, nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, target)
	}

	_, body := doJSON(t, app, "GET", "/admin/check-session", nil)
	assert.Equal(t, false, body["loggedin"])

	cookie := login(t, app)
	_, body = doJSON(t, app, "GET", "/admin/check-session", nil, cookie)
	assert.Equal(t, true, body["loggedin"])
}

func TestAdminLoginFailures(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 4; i++ {
		resp, body := doJSON(t, app, "POST", "/admin/login", map[string]string{"username": "Admin", "password": "wrong"})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, false, body["success"])
	}

	resp, body := doJSON(t, app, "POST", "/admin/login", map[string]string{"username": "Admin", "password": "wrong"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Too many attempts. Try again later.", body["message"])
}

func TestAdminSaveCollegeDataUpdatesChat(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	resp, body := doJSON(t, app, "GET", "/admin/college-data", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Sai College", data["name"])

	update := map[string]any{
		"name": "Sai College",
		"ug_courses": map[string]any{
			"BCA": map[string]string{"duration": "3 Years", "fee": "₹30,000/year", "desc": "Computer applications"},
		},
	}
	resp, body = doJSON(t, app, "POST", "/admin/college-data", update, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Data updated successfully!", body["message"])

	_, body = doJSON(t, app, "POST", "/chat", map[string]string{"message": "bca fees"})
	assert.Contains(t, body["response"], "₹30,000/year")
}

func TestUnknownQueriesAndStats(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	doJSON(t, app, "POST", "/chat", map[string]string{"message": "What is the weather today"})
	doJSON(t, app, "POST", "/chat", map[string]string{"message": "canteen menu"})

	_, body := doJSON(t, app, "GET", "/admin/unknown-queries", nil, cookie)
	queries := body["queries"].([]any)
	require.Len(t, queries, 2)
	assert.Equal(t, "canteen menu", queries[0].(map[string]any)["query"])

	resp, _ := doJSON(t, app, "POST", "/admin/update-status", map[string]any{"type": "query", "index": 1, "status": "Resolved"}, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, stats := doJSON(t, app, "GET", "/admin/stats", nil, cookie)
	assert.Equal(t, 2.0, stats["total_queries"])
	assert.Equal(t, 1.0, stats["resolved_queries"])
	assert.Equal(t, 1.0, stats["pending_queries"])
}

func multipartRequest(t *testing.T, target, field, filename, content string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestSyllabusUploadFlow(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	req := multipartRequest(t, "/admin/upload-pdf", "file", "BCA Sem 1.pdf", "%PDF-1.4", map[string]string{
		"course": "BCA", "semester": "1", "category": "notes",
	})
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body := decode(t, resp)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Notes Uploaded Successfully!", body["message"])

	_, body = doJSON(t, app, "GET", "/admin/pdfs", nil, cookie)
	files := body["files"].([]any)
	require.Len(t, files, 1)
	assert.Equal(t, "Note_BCA_Sem_1.pdf", files[0].(map[string]any)["filename"])

	resp, _ = doJSON(t, app, "POST", "/admin/delete-pdf", map[string]string{"filename": "../admin_config.json"}, cookie)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/admin/delete-pdf", map[string]string{"filename": "Note_BCA_Sem_1.pdf"}, cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/admin/delete-pdf", map[string]string{"filename": "Note_BCA_Sem_1.pdf"}, cookie)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGalleryUploadFlow(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	req := multipartRequest(t, "/admin/upload-gallery-image", "gallery_file", "cricket.png", "png", map[string]string{"category": "Sports"})
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/gallery-images", nil), -1)
	require.NoError(t, err)
	var images []models.GalleryImage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&images))
	require.Len(t, images, 1)
	assert.Equal(t, "sports", images[0].Category)

	resp, _ = doJSON(t, app, "POST", "/admin/delete-gallery-image", map[string]string{"filename": images[0].Filename}, cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = multipartRequest(t, "/admin/upload-gallery-image", "gallery_file", "notes.pdf", "x", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMetrics(t *testing.T) {
	app := newTestApp(t)
	doJSON(t, app, "POST", "/chat", map[string]string{"message": "library"})

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil), -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "saicollege_chat_queries_total")
}

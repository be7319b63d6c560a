package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/mom-generator/pkg/ai"
	"github.com/johnquangdev/mom-generator/pkg/config"
	"github.com/johnquangdev/mom-generator/pkg/jwt"
)

type stubGenerator struct {
	prompt string
	resp   *ai.GenerateResponse
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (*ai.GenerateResponse, error) {
	s.prompt = prompt
	return s.resp, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{RequestTimeout: 2 * time.Minute},
		Generation: config.GenerationConfig{
			Backend:      config.BackendGemini,
			GeminiAPIKey: "test-key",
			Timeout:      time.Second,
		},
		JWT: config.JWTConfig{AccessExpiry: time.Hour},
	}
}

func testApp(cfg *config.Config, gen ai.Generator) *appState {
	return &appState{
		loadConfigFn: func() (*config.Config, error) { return cfg, nil },
		newGeneratorFn: func(context.Context, config.GenerationConfig) (ai.Generator, error) {
			return gen, nil
		},
	}
}

func runCommand(t *testing.T, app *appState, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd(app)
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const sampleVTT = "WEBVTT\n\n1\n00:00:00.000 --> 00:00:02.000\nHello <i>world</i>\n\n2\n00:00:02.000 --> 00:00:04.000\nFoo bar\n"

func TestRootHelpListsCommands(t *testing.T) {
	out, err := runCommand(t, testApp(testConfig(), nil), "--help")
	require.NoError(t, err)
	for _, name := range []string{"generate", "prompt", "transcript", "token"} {
		assert.Contains(t, out, name)
	}
}

func TestPromptCommand(t *testing.T) {
	agenda := writeFile(t, "agenda.json", `{"items":["Budget"]}`)
	transcript := writeFile(t, "meeting.vtt", sampleVTT)
	attendance := writeFile(t, "roster.json", `[{"Name":"A","Attendance":"Present Through Chat"},{"Name":"B","Attendance":"absent"}]`)

	out, err := runCommand(t, testApp(testConfig(), nil), "prompt",
		"--agenda", agenda, "--transcript", transcript, "--attendance", attendance, "--minute-type", "narrativeSummary")
	require.NoError(t, err)

	assert.Contains(t, out, `MEETING AGENDA: {"items":["Budget"]}`)
	assert.Contains(t, out, "MEETING TRANSCRIPTION: Hello world\nFoo bar")
	assert.Contains(t, out, "- A (Chat)")
	assert.Contains(t, out, "Absent Attendees: - B")
	assert.Contains(t, out, "narrative summary format")
}

func TestPromptCommand_RejectsUnknownMinuteType(t *testing.T) {
	_, err := runCommand(t, testApp(testConfig(), nil), "prompt", "--minute-type", "haiku")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown minute type")
}

func TestGenerateCommand(t *testing.T) {
	gen := &stubGenerator{resp: ai.TextResponse("# Minutes")}
	transcript := writeFile(t, "t.txt", "Alice: approved")
	notes := writeFile(t, "notes.txt", "bring receipts\n")

	out, err := runCommand(t, testApp(testConfig(), gen), "generate", "--transcript", transcript, "--notes", notes)
	require.NoError(t, err)
	assert.Equal(t, "# Minutes\n", out)
	assert.Contains(t, gen.prompt, "Alice: approved")
	assert.Contains(t, gen.prompt, "bring receipts")
	assert.Contains(t, gen.prompt, "short narrative summary of the discussion")
}

func TestGenerateCommand_Errors(t *testing.T) {
	gen := &stubGenerator{resp: ai.TextResponse("")}

	_, err := runCommand(t, testApp(testConfig(), gen), "generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--transcript or --zoom-meeting-id")

	transcript := writeFile(t, "t.txt", "x")
	_, err = runCommand(t, testApp(testConfig(), gen), "generate", "--transcript", transcript)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")

	_, err = runCommand(t, testApp(testConfig(), gen), "generate", "--transcript", transcript, "--timeout", "5m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be shorter")

	_, err = runCommand(t, testApp(testConfig(), gen), "generate", "--zoom-meeting-id", "123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ZOOM_CLIENT_ID")
}

func TestTokenCommand(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.AccessSecret = "s3cret"

	out, err := runCommand(t, testApp(cfg, nil), "token", "dashboard", "--role", "admin")
	require.NoError(t, err)

	claims, err := jwt.NewManager("s3cret", time.Hour).ValidateAccessToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "dashboard", claims.Subject)
	assert.Equal(t, "admin", claims.Role)

	_, err = runCommand(t, testApp(testConfig(), nil), "token", "dashboard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_ACCESS_SECRET")
}

func TestTranscriptCommand(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/token":
			_, _ = w.Write([]byte(`{"access_token":"tok"}`))
		case "/v2/meetings/123/recordings":
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"recording_files":[
				{"id":"a","file_type":"MP4","download_url":"` + srv.URL + `/video"},
				{"id":"b","file_type":"TRANSCRIPT","file_extension":"VTT","download_url":"` + srv.URL + `/vtt"}]}`))
		case "/vtt":
			_, _ = w.Write([]byte(sampleVTT))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.Zoom = config.ZoomConfig{
		ClientID:     "id",
		ClientSecret: "secret",
		AccountID:    "acct",
		OAuthURL:     srv.URL + "/oauth/token",
		APIBaseURL:   srv.URL + "/v2",
		HTTPTimeout:  5 * time.Second,
	}

	out, err := runCommand(t, testApp(cfg, nil), "transcript", "123")
	require.NoError(t, err)
	assert.Equal(t, "Hello world\nFoo bar\n", out)

	out, err = runCommand(t, testApp(cfg, nil), "transcript", "123", "--vtt")
	require.NoError(t, err)
	assert.Equal(t, sampleVTT+"\n", out)

	out, err = runCommand(t, testApp(cfg, nil), "transcript", "123", "--details")
	require.NoError(t, err)
	assert.Contains(t, out, `"transcriptFileId": "b"`)
}

package cli

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thde.io/porter"
	"thde.io/porter/google"
)

const testIssuer = "3388000000012345678"

// fakeWallet is an in-memory stand-in for the token endpoint and the generic
// object resources of the Wallet API.
type fakeWallet struct {
	*httptest.Server

	mu      sync.Mutex
	calls   []string
	bodies  map[string]string
	objects map[string]google.GenericObject
	classes map[string]google.GenericClass
	saveURI string
}

func newFakeWallet(t *testing.T) *fakeWallet {
	t.Helper()

	fw := &fakeWallet{
		bodies:  map[string]string{},
		objects: map[string]google.GenericObject{},
		classes: map[string]google.GenericClass{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, google.TokenResponse{AccessToken: "token", ExpiresIn: 3600, TokenType: "Bearer"})
	})
	mux.HandleFunc("POST /v1/genericClass", func(w http.ResponseWriter, r *http.Request) {
		fw.record(r)
		var class google.GenericClass
		_ = json.NewDecoder(r.Body).Decode(&class)
		fw.mu.Lock()
		fw.classes[class.ID] = class
		fw.mu.Unlock()
		writeJSON(w, class)
	})
	mux.HandleFunc("GET /v1/genericClass/{id}", func(w http.ResponseWriter, r *http.Request) {
		fw.record(r)
		fw.mu.Lock()
		class, ok := fw.classes[r.PathValue("id")]
		fw.mu.Unlock()
		if !ok {
			http.Error(w, `{"error":{"code":404}}`, http.StatusNotFound)
			return
		}
		writeJSON(w, class)
	})
	mux.HandleFunc("POST /v1/genericObject/{id}/addMessage", func(w http.ResponseWriter, r *http.Request) {
		fw.record(r)
		fw.mu.Lock()
		obj, ok := fw.objects[r.PathValue("id")]
		fw.mu.Unlock()
		if !ok {
			http.Error(w, `{"error":{"code":404}}`, http.StatusNotFound)
			return
		}
		writeJSON(w, google.AddMessageResponse{Resource: obj})
	})
	mux.HandleFunc("POST /v1/jwt", func(w http.ResponseWriter, r *http.Request) {
		fw.record(r)
		fw.mu.Lock()
		resp := google.JWTInsertResponse{SaveURI: fw.saveURI}
		fw.mu.Unlock()
		writeJSON(w, resp)
	})
	mux.HandleFunc("POST /v1/genericObject", func(w http.ResponseWriter, r *http.Request) {
		fw.record(r)
		fw.store(w, r)
	})
	mux.HandleFunc("PUT /v1/genericObject/{id}", func(w http.ResponseWriter, r *http.Request) {
		fw.record(r)
		fw.store(w, r)
	})
	mux.HandleFunc("GET /v1/genericObject/{id}", func(w http.ResponseWriter, r *http.Request) {
		fw.record(r)
		fw.mu.Lock()
		obj, ok := fw.objects[r.PathValue("id")]
		fw.mu.Unlock()
		if !ok {
			http.Error(w, `{"error":{"code":404}}`, http.StatusNotFound)
			return
		}
		writeJSON(w, obj)
	})
	mux.HandleFunc("GET /v1/genericObject", func(w http.ResponseWriter, r *http.Request) {
		fw.record(r)
		fw.mu.Lock()
		defer fw.mu.Unlock()

		list := google.GenericObjectList{}
		for _, obj := range fw.objects {
			if obj.ClassID == r.URL.Query().Get("classId") {
				list.Resources = append(list.Resources, obj)
			}
		}
		writeJSON(w, list)
	})

	fw.Server = httptest.NewServer(mux)
	t.Cleanup(fw.Close)

	return fw
}

// record notes the call and keeps its body, which stays readable for the handler.
func (fw *fakeWallet) record(r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))

	call := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/v1")

	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.calls = append(fw.calls, call)
	fw.bodies[call] = string(body)
}

// body returns the last request body sent with call.
func (fw *fakeWallet) body(call string) string {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return fw.bodies[call]
}

func (fw *fakeWallet) store(w http.ResponseWriter, r *http.Request) {
	var obj google.GenericObject
	if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fw.mu.Lock()
	fw.objects[obj.ID] = obj
	fw.mu.Unlock()

	writeJSON(w, obj)
}

func (fw *fakeWallet) object(id string) google.GenericObject {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return fw.objects[id]
}

func (fw *fakeWallet) recorded() []string {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return append([]string(nil), fw.calls...)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeTestKey writes a fresh PKCS#8 RSA key to a temporary file.
func writeTestKey(t *testing.T) string {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "key.pem")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), 0o600))

	return path
}

func setCredentials(t *testing.T) {
	t.Helper()

	t.Setenv("PORTER_ISSUER_ID", testIssuer)
	t.Setenv("PORTER_SERVICE_ACCOUNT_EMAIL", "porter@project.iam.gserviceaccount.com")
	t.Setenv("PORTER_PRIVATE_KEY_FILE", writeTestKey(t))
	t.Setenv("PORTER_SERVICE_ACCOUNT_FILE", "")
	t.Setenv("LOG_LEVEL", "error")
}

// execute runs the porter command tree against fw and returns stdout.
func execute(t *testing.T, fw *fakeWallet, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	base := []string{"--env-file", filepath.Join(t.TempDir(), "missing.env"), "--no-color"}
	if fw != nil {
		base = append(base, "--api-url", fw.URL+"/v1", "--token-url", fw.URL+"/token")
	}
	cmd.SetArgs(append(base, args...))

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestObjectCreate(t *testing.T) {
	setCredentials(t)
	fw := newFakeWallet(t)

	out, err := execute(t, fw,
		"object", "create",
		"--id", "ticket1",
		"--class", "concert",
		"--title", "Concert Ticket",
		"--barcode", "TICKET123",
		"--barcode-format", "pdf417",
		"--field", "seat=Seat=A23",
		"--field", "gate=Gate=North=2",
	)
	require.NoError(t, err)

	var view passView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, testIssuer+".ticket1", view.ID)
	assert.Equal(t, testIssuer+".concert", view.ClassID)
	assert.Equal(t, "active", view.State)
	assert.Equal(t, "pdf417:TICKET123", view.Barcode)
	assert.Equal(t, []fieldView{
		{Key: "seat", Label: "Seat", Value: "A23"},
		{Key: "gate", Label: "Gate", Value: "North=2"},
	}, view.Fields)

	stored := fw.object(testIssuer + ".ticket1")
	require.NotNil(t, stored.Barcode)
	assert.Equal(t, "PDF_417", stored.Barcode.Type)
	assert.Equal(t, "ACTIVE", stored.State)
	assert.Len(t, stored.TextModulesData, 2)
}

func TestObjectCreate_GeneratedID(t *testing.T) {
	setCredentials(t)
	fw := newFakeWallet(t)

	out, err := execute(t, fw, "object", "create", "--class", "concert", "--title", "Ticket")
	require.NoError(t, err)

	var view passView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.True(t, strings.HasPrefix(view.ID, testIssuer+"."))
	assert.Len(t, strings.TrimPrefix(view.ID, testIssuer+"."), 36)
}

func TestObjectExpire(t *testing.T) {
	setCredentials(t)
	fw := newFakeWallet(t)

	_, err := execute(t, fw, "object", "create", "--id", "X", "--class", "concert", "--title", "Ticket")
	require.NoError(t, err)

	_, err = execute(t, fw, "object", "expire", "X")
	require.NoError(t, err)

	id := testIssuer + ".X"
	assert.Equal(t, []string{
		"POST /genericObject",
		"GET /genericObject/" + id,
		"PUT /genericObject/" + id,
	}, fw.recorded())
	assert.Equal(t, "EXPIRED", fw.object(id).State)
	assert.Equal(t, "Ticket", fw.object(id).CardTitle.Default())
}

func TestObjectGet_NotFound(t *testing.T) {
	setCredentials(t)
	fw := newFakeWallet(t)

	_, err := execute(t, fw, "object", "get", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, porter.ErrNotFound)

	var apiErr *porter.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Body, `"code":404`)
}

func TestObjectList(t *testing.T) {
	setCredentials(t)
	fw := newFakeWallet(t)

	for _, id := range []string{"a", "b"} {
		_, err := execute(t, fw, "object", "create", "--id", id, "--class", "concert", "--title", "Pass "+id)
		require.NoError(t, err)
	}
	_, err := execute(t, fw, "object", "create", "--id", "other", "--class", "museum", "--title", "Other")
	require.NoError(t, err)

	out, err := execute(t, fw, "object", "list", "--class", "concert")
	require.NoError(t, err)

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, testIssuer+".a")
	assert.Contains(t, out, testIssuer+".b")
	assert.Contains(t, out, "ACTIVE")
	assert.NotContains(t, out, testIssuer+".other")
}

func TestClassCreate(t *testing.T) {
	setCredentials(t)
	fw := newFakeWallet(t)

	out, err := execute(t, fw, "class", "create", "--id", "concert", "--issuer-name", "Porter")
	require.NoError(t, err)

	var view classView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, classView{ID: testIssuer + ".concert", IssuerName: "Porter", ReviewStatus: "under_review"}, view)
}

func TestSaveURL_Offline(t *testing.T) {
	setCredentials(t)
	fw := newFakeWallet(t)

	_, err := execute(t, fw, "object", "create", "--id", "X", "--class", "concert", "--title", "Ticket")
	require.NoError(t, err)

	out, err := execute(t, fw, "save-url", "--offline", "X")
	require.NoError(t, err)

	link := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(link, google.SaveLinkPrefix), link)
	assert.Equal(t, 3, strings.Count(strings.TrimPrefix(link, google.SaveLinkPrefix), ".")+1)
}

func TestPlatform(t *testing.T) {
	setCredentials(t)

	tests := []struct {
		name string
		args []string
	}{
		{"apple get", []string{"--platform", "apple", "object", "get", "X"}},
		{"apple expire", []string{"--platform", "apple", "object", "expire", "X"}},
		{"apple list", []string{"--platform", "apple", "object", "list", "--class", "c"}},
		{"apple class", []string{"--platform", "apple", "class", "get", "c"}},
		{"unknown platform", []string{"--platform", "windows", "object", "get", "X"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, nil, tt.args...)
			assert.ErrorIs(t, err, porter.ErrUnsupportedPlatform)
		})
	}
}

func TestMissingCredentials(t *testing.T) {
	setCredentials(t)
	t.Setenv("PORTER_PRIVATE_KEY_FILE", "")

	_, err := execute(t, nil, "object", "get", "X")
	assert.ErrorIs(t, err, porter.ErrConfig)
}

func TestObjectUpdate(t *testing.T) {
	setCredentials(t)
	fw := newFakeWallet(t)

	_, err := execute(t, fw,
		"object", "create",
		"--id", "X",
		"--class", "concert",
		"--title", "Old",
		"--subtitle", "Main Stage",
		"--field", "seat=Seat=A23",
	)
	require.NoError(t, err)

	out, err := execute(t, fw, "object", "update", "X", "--class", "concert", "--title", "New", "--state", "completed")
	require.NoError(t, err)

	id := testIssuer + ".X"
	put := "PUT /genericObject/" + id
	assert.Equal(t, []string{"POST /genericObject", put}, fw.recorded())

	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(fw.body(put)), &sent))
	assert.Equal(t, id, sent["id"])
	assert.Equal(t, testIssuer+".concert", sent["classId"])
	assert.Equal(t, "COMPLETED", sent["state"])
	assert.NotContains(t, sent, "header", "replacement must clear the subtitle")
	assert.NotContains(t, sent, "textModulesData", "replacement must clear the fields")

	stored := fw.object(id)
	assert.Equal(t, "New", stored.CardTitle.Default())
	assert.Nil(t, stored.Header)
	assert.Empty(t, stored.TextModulesData)

	var view passView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "New", view.Title)
	assert.Equal(t, "completed", view.State)
}

func TestObjectMessage(t *testing.T) {
	setCredentials(t)
	fw := newFakeWallet(t)

	_, err := execute(t, fw, "object", "create", "--id", "X", "--class", "concert", "--title", "Ticket")
	require.NoError(t, err)

	_, err = execute(t, fw, "object", "message", "X", "--header", "Update", "--body", "Gate changed", "--for", "1h")
	require.NoError(t, err)

	call := "POST /genericObject/" + testIssuer + ".X/addMessage"
	assert.Contains(t, fw.recorded(), call)

	var sent struct {
		Message struct {
			Header          string `json:"header"`
			Body            string `json:"body"`
			DisplayInterval *struct {
				Start *struct {
					Date string `json:"date"`
				} `json:"start"`
				End *struct {
					Date string `json:"date"`
				} `json:"end"`
			} `json:"displayInterval"`
		} `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(fw.body(call)), &sent))
	assert.Equal(t, "Update", sent.Message.Header)
	assert.Equal(t, "Gate changed", sent.Message.Body)
	require.NotNil(t, sent.Message.DisplayInterval)
	require.NotNil(t, sent.Message.DisplayInterval.Start)
	require.NotNil(t, sent.Message.DisplayInterval.End)
	assert.NotEmpty(t, sent.Message.DisplayInterval.End.Date)
}

func TestObjectMessage_RequiresBody(t *testing.T) {
	setCredentials(t)
	fw := newFakeWallet(t)

	_, err := execute(t, fw, "object", "message", "X", "--header", "Update")
	require.Error(t, err)
	assert.Empty(t, fw.recorded())
}

func TestClassGet(t *testing.T) {
	setCredentials(t)
	fw := newFakeWallet(t)

	_, err := execute(t, fw, "class", "create", "--id", "concert", "--issuer-name", "Porter", "--review-status", "draft")
	require.NoError(t, err)

	out, err := execute(t, fw, "class", "get", "concert")
	require.NoError(t, err)

	var view classView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, classView{ID: testIssuer + ".concert", IssuerName: "Porter", ReviewStatus: "draft"}, view)
	assert.Equal(t, "GET /genericClass/"+testIssuer+".concert", fw.recorded()[1])

	_, err = execute(t, fw, "class", "get", "missing")
	assert.ErrorIs(t, err, porter.ErrNotFound)
}

func TestSaveURL(t *testing.T) {
	setCredentials(t)
	fw := newFakeWallet(t)
	fw.saveURI = "https://pay.google.com/gp/v/save/registered"

	_, err := execute(t, fw, "object", "create", "--id", "X", "--class", "concert", "--title", "Ticket")
	require.NoError(t, err)

	out, err := execute(t, fw, "save-url", "X")
	require.NoError(t, err)
	assert.Equal(t, "https://pay.google.com/gp/v/save/registered\n", out)

	assert.Equal(t, []string{
		"POST /genericObject",
		"GET /genericObject/" + testIssuer + ".X",
		"POST /jwt",
	}, fw.recorded())

	var sent google.JWTResource
	require.NoError(t, json.Unmarshal([]byte(fw.body("POST /jwt")), &sent))
	assert.Equal(t, 2, strings.Count(sent.JWT, "."))
}

func TestSaveURL_NoSaveURI(t *testing.T) {
	setCredentials(t)
	fw := newFakeWallet(t)

	_, err := execute(t, fw, "object", "create", "--id", "X", "--class", "concert", "--title", "Ticket")
	require.NoError(t, err)

	out, err := execute(t, fw, "save-url", "X")
	assert.ErrorIs(t, err, google.ErrNoSaveURI)
	assert.Empty(t, out)
}

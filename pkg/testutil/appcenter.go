package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/arthur-debert/appcenter-devices/pkg/types"
)

// TestToken is the API token the stub server accepts by default
const TestToken = "xxx"

// AppCenterServer is an httptest server emulating the App Center distribution API
// for a single owner/app pair.
type AppCenterServer struct {
	*httptest.Server

	Owner string
	App   string
	Token string

	mu       sync.Mutex
	groups   []string
	exports  map[string]string
	failures map[string]int
	calls    []string
}

// NewAppCenterServer starts a stub server, closed when the test ends
func NewAppCenterServer(t testing.TB, owner, app string) *AppCenterServer {
	t.Helper()

	s := &AppCenterServer{
		Owner:    owner,
		App:      app,
		Token:    TestToken,
		groups:   []string{types.DefaultGroup},
		exports:  make(map[string]string),
		failures: make(map[string]int),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// SetGroups replaces the group catalog returned for the app
func (s *AppCenterServer) SetGroups(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = append([]string(nil), names...)
}

// SetExport sets the raw device export body for a group
func (s *AppCenterServer) SetExport(group, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exports[group] = body
}

// SetDevices sets the device export of a group from device records
func (s *AppCenterServer) SetDevices(group string, devices ...types.Device) {
	s.SetExport(group, DeviceExport(devices...))
}

// FailPath makes requests to the given escaped path answer with status
func (s *AppCenterServer) FailPath(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = status
}

// Calls returns the escaped request paths in the order they were received
func (s *AppCenterServer) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// CallCount returns how many times an escaped path was requested
func (s *AppCenterServer) CallCount(path string) int {
	count := 0
	for _, call := range s.Calls() {
		if call == path {
			count++
		}
	}
	return count
}

// GroupsPath is the escaped path of the group listing endpoint
func (s *AppCenterServer) GroupsPath() string {
	return fmt.Sprintf("/apps/%s/%s/distribution_groups", url.PathEscape(s.Owner), url.PathEscape(s.App))
}

// DevicesPath is the escaped path of a group's device export endpoint
func (s *AppCenterServer) DevicesPath(group string) string {
	return fmt.Sprintf("%s/%s/devices/download_devices_list", s.GroupsPath(), url.PathEscape(group))
}

func (s *AppCenterServer) handle(w http.ResponseWriter, r *http.Request) {
	path := r.URL.EscapedPath()

	s.mu.Lock()
	s.calls = append(s.calls, path)
	status, failing := s.failures[path]
	groups := append([]string(nil), s.groups...)
	exports := make(map[string]string, len(s.exports))
	for k, v := range s.exports {
		exports[k] = v
	}
	s.mu.Unlock()

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.Header.Get("X-API-Token") != s.Token {
		writeAPIError(w, http.StatusUnauthorized, "Unauthorized", "Invalid API token")
		return
	}
	if failing {
		writeAPIError(w, status, http.StatusText(status), "injected failure")
		return
	}

	if path == s.GroupsPath() {
		body := make([]map[string]string, 0, len(groups))
		for _, g := range groups {
			body = append(body, map[string]string{"name": g})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
		return
	}

	prefix := s.GroupsPath() + "/"
	suffix := "/devices/download_devices_list"
	if strings.HasPrefix(path, prefix) && strings.HasSuffix(path, suffix) {
		group, err := url.PathUnescape(strings.TrimSuffix(strings.TrimPrefix(path, prefix), suffix))
		if err != nil || !contains(groups, group) {
			writeAPIError(w, http.StatusNotFound, "NotFound", "distribution group not found")
			return
		}
		body, ok := exports[group]
		if !ok {
			body = DeviceExport()
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		_, _ = w.Write([]byte(body))
		return
	}

	writeAPIError(w, http.StatusNotFound, "NotFound", "no route for "+path)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// DeviceExport renders devices the way App Center's download_devices_list does
func DeviceExport(devices ...types.Device) string {
	var b strings.Builder
	b.WriteString(types.HeaderDeviceID + "\t" + types.HeaderDeviceName + "\n")
	for _, d := range devices {
		b.WriteString(d.ID + "\t" + d.Name + "\n")
	}
	return b.String()
}

package version

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.Version != Version || info.APIVersion != "v1" {
		t.Errorf("unexpected info %+v", info)
	}
	if !strings.HasPrefix(info.GoVersion, "go") {
		t.Errorf("unexpected go version %q", info.GoVersion)
	}
}

func TestInfoJSON(t *testing.T) {
	out, err := Info{Version: "1.2.3", APIVersion: "v1"}.JSON()
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		t.Fatal(err)
	}
	if m["version"] != "1.2.3" || m["api_version"] != "v1" {
		t.Errorf("unexpected json %s", out)
	}
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package build

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"sitefront/internal/site"
)

type fakeRenderer struct {
	routes  []site.Route
	missing map[string]bool
	failOn  string
}

func (f *fakeRenderer) Routes(context.Context) []site.Route { return f.routes }

func (f *fakeRenderer) Render(_ context.Context, r site.Route) ([]byte, bool, error) {
	if r.Path == f.failOn {
		return nil, false, errors.New("template exploded")
	}
	if f.missing[r.Path] {
		return nil, false, nil
	}
	return []byte("<html>" + r.Path + "</html>"), true, nil
}

func (f *fakeRenderer) NotFound(context.Context, string) ([]byte, error) {
	return []byte("<html>404</html>"), nil
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestBuild(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dist")
	if err := os.MkdirAll(out, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(out, "stale.html"), []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := &fakeRenderer{
		routes: []site.Route{
			{Path: "/", Kind: site.KindHome},
			{Path: "/about", Kind: site.KindPage, Slug: "about"},
			{Path: "/services/web", Kind: site.KindPage, Slug: "services/web"},
			{Path: "/case-studies", Kind: site.KindCaseStudyIndex},
			{Path: "/case-studies/gone", Kind: site.KindCaseStudy, Slug: "gone"},
		},
		missing: map[string]bool{"/case-studies/gone": true},
	}
	static := fstest.MapFS{
		"css/site.css":     {Data: []byte("body{}")},
		"js/components.js": {Data: []byte("//")},
	}

	report, err := Build(context.Background(), r, Options{
		OutputDir: out,
		SiteURL:   "https://example.com/",
		Static:    static,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if diff := cmp.Diff([]string{"/", "/about", "/services/web", "/case-studies"}, report.Pages); diff != "" {
		t.Errorf("pages (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/case-studies/gone"}, report.Skipped); diff != "" {
		t.Errorf("skipped (-want +got):\n%s", diff)
	}
	if report.Assets != 2 {
		t.Errorf("assets: got %d, want 2", report.Assets)
	}

	if got := readFile(t, filepath.Join(out, "index.html")); got != "<html>/</html>" {
		t.Errorf("index.html: got %q", got)
	}
	if got := readFile(t, filepath.Join(out, "services", "web", "index.html")); got != "<html>/services/web</html>" {
		t.Errorf("nested page: got %q", got)
	}
	if got := readFile(t, filepath.Join(out, "404.html")); got != "<html>404</html>" {
		t.Errorf("404.html: got %q", got)
	}
	if got := readFile(t, filepath.Join(out, "static", "css", "site.css")); got != "body{}" {
		t.Errorf("static asset: got %q", got)
	}
	if _, err := os.Stat(filepath.Join(out, "stale.html")); !os.IsNotExist(err) {
		t.Error("stale output should be removed")
	}
	if _, err := os.Stat(filepath.Join(out, "case-studies", "gone")); !os.IsNotExist(err) {
		t.Error("skipped route should not be written")
	}

	sitemap := readFile(t, filepath.Join(out, "sitemap.xml"))
	for _, want := range []string{
		"<loc>https://example.com/</loc>",
		"<loc>https://example.com/services/web/</loc>",
		"<loc>https://example.com/case-studies/</loc>",
	} {
		if !strings.Contains(sitemap, want) {
			t.Errorf("sitemap missing %q", want)
		}
	}
	if strings.Contains(sitemap, "gone") {
		t.Error("sitemap lists a skipped route")
	}
}

func TestBuild_RenderError(t *testing.T) {
	r := &fakeRenderer{
		routes: []site.Route{{Path: "/", Kind: site.KindHome}, {Path: "/bad", Kind: site.KindPage, Slug: "bad"}},
		failOn: "/bad",
	}
	_, err := Build(context.Background(), r, Options{OutputDir: t.TempDir()})
	if err == nil || !strings.Contains(err.Error(), "/bad") {
		t.Fatalf("err: got %v", err)
	}
}

func TestBuild_RequiresOutputDir(t *testing.T) {
	if _, err := Build(context.Background(), &fakeRenderer{}, Options{}); err == nil {
		t.Fatal("expected error without output dir")
	}
}

func TestRouteFile(t *testing.T) {
	tests := []struct {
		route string
		want  string
	}{
		{"/", "index.html"},
		{"/about", filepath.Join("about", "index.html")},
		{"/case-studies/acme/", filepath.Join("case-studies", "acme", "index.html")},
	}
	for _, tt := range tests {
		if got := RouteFile(tt.route); got != tt.want {
			t.Errorf("RouteFile(%q) = %q, want %q", tt.route, got, tt.want)
		}
	}
}

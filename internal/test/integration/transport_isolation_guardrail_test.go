//go:build integration
// +build integration

package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// Domain packages stay transport-free so the registry can back any surface
// without dragging HTTP types into roster logic.
func TestDomainPackagesStayTransportFree(t *testing.T) {
	config := &packages.Config{
		Mode:  packages.NeedName | packages.NeedImports,
		Tests: false,
		Dir:   integrationRepoRoot(t),
	}
	domainPkgs, err := packages.Load(config, "./internal/activity", "./internal/registry")
	if err != nil {
		t.Fatalf("load domain packages: %v", err)
	}
	if packages.PrintErrors(domainPkgs) > 0 {
		t.Fatalf("domain package load errors")
	}
	if len(domainPkgs) == 0 {
		t.Fatal("domain packages not found")
	}

	const serverTree = "github.com/mergington/activities/internal/server"

	var violations []string
	for _, pkg := range domainPkgs {
		for importPath := range pkg.Imports {
			if importPath == "net/http" || strings.HasPrefix(importPath, serverTree) {
				violations = append(violations, pkg.PkgPath+" imports "+importPath)
			}
		}
	}
	if len(violations) > 0 {
		t.Fatalf("domain packages must not depend on the HTTP layer:\n- %s", strings.Join(violations, "\n- "))
	}
}

func integrationRepoRoot(t *testing.T) string {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("get working dir: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return wd
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			t.Fatal("go.mod not found")
		}
		wd = parent
	}
}

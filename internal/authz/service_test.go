package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	return svc
}

func TestBootstrapBuiltinRoles(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap should be idempotent: %v", err)
	}

	cases := []struct {
		role  string
		obj   string
		act   string
		allow bool
	}{
		{"ADMIN", "/api/v1/admin/orders", "GET", true},
		{"ADMIN", "/api/v1/admin/orders/12", "get", true},
		{"ADMIN", "/api/v1/admin/orders/12", "DELETE", false},
		{"SUPPORT", "/api/v1/admin/orders/12", "GET", true},
		{"SUPPORT", "/api/v1/admin/users", "GET", false},
		{"CUSTOMER", "/api/v1/admin/orders", "GET", false},
		{"", "/api/v1/admin/orders", "GET", false},
	}
	for _, tc := range cases {
		allow, err := svc.EnforceRole(tc.role, tc.obj, tc.act)
		if err != nil {
			t.Fatalf("enforce %s %s %s failed: %v", tc.role, tc.act, tc.obj, err)
		}
		if allow != tc.allow {
			t.Fatalf("enforce %s %s %s want %v got %v", tc.role, tc.act, tc.obj, tc.allow, allow)
		}
	}
}

func TestGrantAndRevokeRolePolicy(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy("auditor", "/api/v1/admin/orders/:id", "get"); err != nil {
		t.Fatalf("grant failed: %v", err)
	}
	policies, err := svc.GetRolePolicies("auditor")
	if err != nil {
		t.Fatalf("get policies failed: %v", err)
	}
	if len(policies) != 1 || policies[0].Object != "/admin/orders/:id" || policies[0].Action != "GET" {
		t.Fatalf("unexpected policies: %+v", policies)
	}
	allow, _ := svc.EnforceRole("auditor", "/api/v1/admin/orders/3", "GET")
	if !allow {
		t.Fatalf("granted policy should allow")
	}

	if err := svc.RevokeRolePolicy("auditor", "/admin/orders/:id", "GET"); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	allow, _ = svc.EnforceRole("auditor", "/api/v1/admin/orders/3", "GET")
	if allow {
		t.Fatalf("revoked policy should deny")
	}
}

func TestNormalizeHelpers(t *testing.T) {
	if got, _ := NormalizeRole(" Admin "); got != "role:admin" {
		t.Fatalf("unexpected role: %s", got)
	}
	if _, err := NormalizeRole("role:"); err == nil {
		t.Fatalf("bare prefix should be rejected")
	}
	if got := NormalizeObject("api/v1/admin/orders"); got != "/admin/orders" {
		t.Fatalf("unexpected object: %s", got)
	}
	if got := NormalizeObject("/api/v1"); got != "/" {
		t.Fatalf("unexpected root object: %s", got)
	}
	if got := NormalizeAction(" patch "); got != "PATCH" {
		t.Fatalf("unexpected action: %s", got)
	}
}

package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/drover/pkg/domain/model"
)

func TestParseTenantTargets(t *testing.T) {
	t.Run("two targets with a blank line", func(t *testing.T) {
		targets, malformed := model.ParseTenantTargets("a=b\nc=d\n\n")
		gt.Value(t, len(malformed)).Equal(0)
		gt.Value(t, targets).Equal([]model.TenantTarget{
			{Tenant: "a", Environment: "b"},
			{Tenant: "c", Environment: "d"},
		})
	})

	t.Run("empty input yields zero targets", func(t *testing.T) {
		targets, malformed := model.ParseTenantTargets("")
		gt.Value(t, len(targets)).Equal(0)
		gt.Value(t, len(malformed)).Equal(0)
	})

	t.Run("comma separated environments expand", func(t *testing.T) {
		targets, malformed := model.ParseTenantTargets("acme=develop,production\nbeta=staging")
		gt.Value(t, len(malformed)).Equal(0)
		gt.Value(t, targets).Equal([]model.TenantTarget{
			{Tenant: "acme", Environment: "develop"},
			{Tenant: "acme", Environment: "production"},
			{Tenant: "beta", Environment: "staging"},
		})
	})

	t.Run("duplicates collapse keeping first position", func(t *testing.T) {
		targets, _ := model.ParseTenantTargets("a=b\nc=d\na=b")
		gt.Value(t, targets).Equal([]model.TenantTarget{
			{Tenant: "a", Environment: "b"},
			{Tenant: "c", Environment: "d"},
		})
	})

	t.Run("malformed lines are reported, not fatal", func(t *testing.T) {
		targets, malformed := model.ParseTenantTargets("nodelimiter\n=env\ntenant=\nok=dev")
		gt.Value(t, targets).Equal([]model.TenantTarget{
			{Tenant: "ok", Environment: "dev"},
		})
		gt.Value(t, malformed).Equal([]string{"nodelimiter", "=env", "tenant="})
	})

	t.Run("whitespace is trimmed", func(t *testing.T) {
		targets, _ := model.ParseTenantTargets("  acme = dev \n")
		gt.Value(t, targets).Equal([]model.TenantTarget{
			{Tenant: "acme", Environment: "dev"},
		})
	})
}

func TestTenantTargetRepoName(t *testing.T) {
	target := model.TenantTarget{Tenant: "acme", Environment: "develop"}
	gt.Value(t, target.RepoName()).Equal("acme.bootstrap.infra")
}

func TestDispatchReportCounts(t *testing.T) {
	report := model.DispatchReport{
		{Status: model.DispatchDispatched},
		{Status: model.DispatchDispatched},
		{Status: model.DispatchSkipped},
		{Status: model.DispatchFailed},
	}

	dispatched, skipped, failed := report.Counts()
	gt.Value(t, dispatched).Equal(2)
	gt.Value(t, skipped).Equal(1)
	gt.Value(t, failed).Equal(1)
}

package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/drover/pkg/domain/types"
)

func TestClassifyBranch(t *testing.T) {
	tests := []struct {
		name        string
		refName     string
		majorBranch string
		wantRole    model.BranchRole
		wantMajor   uint64
	}{
		{
			name:     "Staging is mainline",
			refName:  "staging",
			wantRole: model.RoleMainline,
		},
		{
			name:     "Production is mainline",
			refName:  "production",
			wantRole: model.RoleMainline,
		},
		{
			name:     "Feature branch is other",
			refName:  "feature/add-cache",
			wantRole: model.RoleOther,
		},
		{
			name:     "Release branch without override is other",
			refName:  "release/v4",
			wantRole: model.RoleOther,
		},
		{
			name:        "Major version branch match",
			refName:     "projectname-v4",
			majorBranch: "projectname-v4",
			wantRole:    model.RoleHotfixMajor,
			wantMajor:   4,
		},
		{
			name:        "Other branch with override set",
			refName:     "staging",
			majorBranch: "projectname-v4",
			wantRole:    model.RoleMainline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := model.ClassifyBranch(tt.refName, tt.majorBranch)
			gt.NoError(t, err)
			gt.Value(t, ctx.Role).Equal(tt.wantRole)
			gt.Value(t, ctx.Major).Equal(tt.wantMajor)
			gt.Value(t, ctx.Name).Equal(tt.refName)
		})
	}
}

func TestClassifyBranch_InvalidOverride(t *testing.T) {
	tests := []string{"v4", "project", "project-v", "project-4", "pro ject-v4"}

	for _, override := range tests {
		t.Run(override, func(t *testing.T) {
			_, err := model.ClassifyBranch("staging", override)
			gt.Error(t, err)
			gt.Value(t, errors.Is(err, types.ErrConfiguration)).Equal(true)
		})
	}
}

func TestBranchContextPublishable(t *testing.T) {
	gt.Value(t, model.BranchContext{Role: model.RoleMainline}.Publishable()).Equal(true)
	gt.Value(t, model.BranchContext{Role: model.RoleHotfixMajor}.Publishable()).Equal(true)
	gt.Value(t, model.BranchContext{Role: model.RoleOther}.Publishable()).Equal(false)
}

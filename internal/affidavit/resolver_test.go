package affidavit

import (
	"context"
	"errors"
	"testing"

	"affidavit/internal/utils"
	"affidavit/pkg/types"
)

func TestResolveTargetSelf(t *testing.T) {
	fx := newEngineFixture()
	e := fx.engine(t)

	principal := Principal{ID: "pet-1", Role: types.RolePetitioner}
	target, err := e.ResolveTarget(context.Background(), principal, Query{})
	if err != nil {
		t.Fatalf("ResolveTarget: %v", err)
	}
	if target != "pet-1" {
		t.Errorf("target = %q, want %q", target, "pet-1")
	}
}

func TestResolveTargetExplicitUserRequiresAdministrator(t *testing.T) {
	fx := newEngineFixture()
	fx.users.users["pet-1"] = &types.User{ID: "pet-1"}
	e := fx.engine(t)

	principal := Principal{ID: "other", Role: types.RolePetitioner}
	_, err := e.ResolveTarget(context.Background(), principal, Query{UserID: "pet-1"})
	if !errors.Is(err, types.ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
}

func TestResolveTargetAdministratorExplicitUser(t *testing.T) {
	fx := newEngineFixture()
	fx.users.users["pet-1"] = &types.User{ID: "pet-1"}
	e := fx.engine(t)

	principal := Principal{ID: "admin-1", Role: types.RoleAdministrator}
	target, err := e.ResolveTarget(context.Background(), principal, Query{UserID: "pet-1"})
	if err != nil {
		t.Fatalf("ResolveTarget: %v", err)
	}
	if target != "pet-1" {
		t.Errorf("target = %q, want %q", target, "pet-1")
	}
}

func TestResolveTargetAdministratorUnknownUser(t *testing.T) {
	fx := newEngineFixture()
	e := fx.engine(t)

	principal := Principal{ID: "admin-1", Role: types.RoleAdministrator}
	_, err := e.ResolveTarget(context.Background(), principal, Query{UserID: "ghost"})
	if !errors.Is(err, types.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestResolveTargetRespondent(t *testing.T) {
	fx := newEngineFixture()
	fx.cases.cases["case-1"] = &types.Case{
		ID:           "case-1",
		PetitionerID: "pet-1",
		RespondentID: utils.StringPtr("resp-1"),
	}
	e := fx.engine(t)

	principal := Principal{ID: "resp-1", Role: types.RoleRespondent}

	t.Run("valid case resolves to petitioner", func(t *testing.T) {
		target, err := e.ResolveTarget(context.Background(), principal, Query{CaseID: "case-1"})
		if err != nil {
			t.Fatalf("ResolveTarget: %v", err)
		}
		if target != "pet-1" {
			t.Errorf("target = %q, want %q", target, "pet-1")
		}
	})

	t.Run("missing case id", func(t *testing.T) {
		_, err := e.ResolveTarget(context.Background(), principal, Query{})
		if !errors.Is(err, types.ErrInvalidInput) {
			t.Errorf("err = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("unknown case", func(t *testing.T) {
		_, err := e.ResolveTarget(context.Background(), principal, Query{CaseID: "nope"})
		if !errors.Is(err, types.ErrCaseNotFound) {
			t.Errorf("err = %v, want ErrCaseNotFound", err)
		}
	})

	t.Run("not a party on the case", func(t *testing.T) {
		stranger := Principal{ID: "resp-2", Role: types.RoleRespondent}
		_, err := e.ResolveTarget(context.Background(), stranger, Query{CaseID: "case-1"})
		if !errors.Is(err, types.ErrForbidden) {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
	})
}

func TestResolveTargetRespondentAttorney(t *testing.T) {
	fx := newEngineFixture()
	fx.cases.cases["case-1"] = &types.Case{
		ID:                   "case-1",
		PetitionerID:         "pet-1",
		RespondentID:         utils.StringPtr("resp-1"),
		RespondentAttorneyID: utils.StringPtr("atty-1"),
	}
	e := fx.engine(t)

	t.Run("attorney slot matches", func(t *testing.T) {
		principal := Principal{ID: "atty-1", Role: types.RoleRespondentAttorney}
		target, err := e.ResolveTarget(context.Background(), principal, Query{CaseID: "case-1"})
		if err != nil {
			t.Fatalf("ResolveTarget: %v", err)
		}
		if target != "pet-1" {
			t.Errorf("target = %q, want %q", target, "pet-1")
		}
	})

	t.Run("respondent slot does not satisfy the attorney check", func(t *testing.T) {
		principal := Principal{ID: "resp-1", Role: types.RoleRespondentAttorney}
		_, err := e.ResolveTarget(context.Background(), principal, Query{CaseID: "case-1"})
		if !errors.Is(err, types.ErrForbidden) {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
	})
}

func TestResolveWriteOwner(t *testing.T) {
	fx := newEngineFixture()
	fx.users.users["pet-1"] = &types.User{ID: "pet-1"}
	e := fx.engine(t)

	t.Run("self", func(t *testing.T) {
		principal := Principal{ID: "pet-1", Role: types.RolePetitioner}
		owner, err := e.ResolveWriteOwner(context.Background(), principal, "")
		if err != nil {
			t.Fatalf("ResolveWriteOwner: %v", err)
		}
		if owner != "pet-1" {
			t.Errorf("owner = %q, want %q", owner, "pet-1")
		}
	})

	t.Run("administrator on behalf of target", func(t *testing.T) {
		principal := Principal{ID: "admin-1", Role: types.RoleAdministrator}
		owner, err := e.ResolveWriteOwner(context.Background(), principal, "pet-1")
		if err != nil {
			t.Fatalf("ResolveWriteOwner: %v", err)
		}
		if owner != "pet-1" {
			t.Errorf("owner = %q, want %q", owner, "pet-1")
		}
	})

	t.Run("respondent writes are forbidden", func(t *testing.T) {
		principal := Principal{ID: "resp-1", Role: types.RoleRespondent}
		_, err := e.ResolveWriteOwner(context.Background(), principal, "")
		if !errors.Is(err, types.ErrForbidden) {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
	})

	t.Run("non-administrator explicit target is forbidden", func(t *testing.T) {
		principal := Principal{ID: "pet-2", Role: types.RolePetitioner}
		_, err := e.ResolveWriteOwner(context.Background(), principal, "pet-1")
		if !errors.Is(err, types.ErrForbidden) {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
	})
}

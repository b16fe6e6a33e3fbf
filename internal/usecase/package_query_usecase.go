package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase/interfaces"
)

// IPackageQueryUseCase reads a case's current generated artifacts.

type IPackageQueryUseCase interface {
	ListPackages(ctx context.Context, caseID string) ([]entities.Package, error)
	ListTasks(ctx context.Context, caseID string) ([]entities.SchedulingTask, error)
}

type PackageQueryUseCase struct {
	cases    interfaces.ICaseRepository
	packages interfaces.IPackageRepository
}

var _ IPackageQueryUseCase = (*PackageQueryUseCase)(nil)

func NewPackageQueryUseCase(cases interfaces.ICaseRepository, packages interfaces.IPackageRepository) *PackageQueryUseCase {
	return &PackageQueryUseCase{cases: cases, packages: packages}
}

func (u *PackageQueryUseCase) ListPackages(ctx context.Context, caseID string) ([]entities.Package, error) {
	if err := u.requireCase(ctx, &caseID); err != nil {
		return nil, err
	}
	packages, err := u.packages.ListByCaseID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	sort.Slice(packages, func(i, j int) bool { return packages[i].SortOrder < packages[j].SortOrder })
	return packages, nil
}

func (u *PackageQueryUseCase) ListTasks(ctx context.Context, caseID string) ([]entities.SchedulingTask, error) {
	if err := u.requireCase(ctx, &caseID); err != nil {
		return nil, err
	}
	return u.packages.ListTasksByCaseID(ctx, caseID)
}

func (u *PackageQueryUseCase) requireCase(ctx context.Context, caseID *string) error {
	*caseID = strings.TrimSpace(*caseID)
	if *caseID == "" {
		return ErrInvalidCaseID
	}
	c, err := u.cases.GetByID(ctx, *caseID)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrCaseNotFound
	}
	return nil
}

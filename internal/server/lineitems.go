package server

import (
	"fmt"
	"net/http"

	"affidavit/pkg/types"
)

// Line-item CRUD. Reads go through the same target resolution as the
// affidavit itself, so respondent-side roles can inspect the petitioner's
// rows. Writes use the narrower owner resolution: self, or an administrator
// naming an explicit userId.

func (s *Service) readOwner(r *http.Request) (string, error) {
	principal, err := s.principalFromContext(r.Context())
	if err != nil {
		return "", types.ErrForbidden
	}

	q, err := s.affidavitQuery(r)
	if err != nil {
		return "", fmt.Errorf("%s: %w", err, types.ErrInvalidInput)
	}

	return s.engine.ResolveTarget(r.Context(), principal, q)
}

func (s *Service) writeOwner(r *http.Request) (string, error) {
	principal, err := s.principalFromContext(r.Context())
	if err != nil {
		return "", types.ErrForbidden
	}

	return s.engine.ResolveWriteOwner(r.Context(), principal, r.FormValue("userId"))
}

// decodeForm parses the request body and decodes the posted values onto
// dst. Absent fields are left untouched, which gives PATCH its partial
// update semantics when dst is the existing row.
func decodeForm(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("failed to parse form: %w", err)
	}
	if err := decoder.Decode(dst, r.PostForm); err != nil {
		return fmt.Errorf("failed to decode form: %w", err)
	}
	return nil
}

func categoryFromRequest(r *http.Request) (types.LineCategory, error) {
	switch r.PathValue("category") {
	case "incomes":
		return types.CategoryMonthlyIncome, nil
	case "deductions":
		return types.CategoryMonthlyDeduction, nil
	case "expenses":
		return types.CategoryHouseholdExpense, nil
	}
	return "", fmt.Errorf("unknown line item collection: %w", types.ErrInvalidInput)
}

// Employment

type employmentRequest struct {
	EmployerName        *string  `form:"employerName"`
	Occupation          *string  `form:"occupation"`
	PayRate             *float64 `form:"payRate"`
	PayFrequencyTypeID  *int     `form:"payFrequencyTypeId"`
	PayFrequencyIfOther *string  `form:"payFrequencyIfOther"`
	Retired             *bool    `form:"retired"`
}

func (req *employmentRequest) apply(row *types.Employment) {
	if req.EmployerName != nil {
		row.EmployerName = *req.EmployerName
	}
	if req.Occupation != nil {
		row.Occupation = req.Occupation
	}
	if req.PayRate != nil {
		row.PayRate = *req.PayRate
	}
	if req.PayFrequencyTypeID != nil {
		row.PayFrequencyTypeID = *req.PayFrequencyTypeID
	}
	if req.PayFrequencyIfOther != nil {
		row.PayFrequencyIfOther = req.PayFrequencyIfOther
	}
	if req.Retired != nil {
		row.Retired = *req.Retired
	}
}

func (s *Service) handleListEmployment(w http.ResponseWriter, r *http.Request) {
	ownerID, err := s.readOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	rows, err := s.employmentRepo.ByOwner(r.Context(), ownerID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, rows)
}

func (s *Service) handleCreateEmployment(w http.ResponseWriter, r *http.Request) {
	ownerID, err := s.writeOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	var req employmentRequest
	if err := decodeForm(r, &req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid form values"})
		return
	}

	if req.EmployerName == nil || *req.EmployerName == "" {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "employerName is required"})
		return
	}

	row := &types.Employment{OwnerID: ownerID}
	req.apply(row)

	if err := s.employmentRepo.Create(r.Context(), row); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, row)
}

func (s *Service) handlePatchEmployment(w http.ResponseWriter, r *http.Request) {
	ownerID, err := s.writeOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	rowID := r.PathValue("id")
	row, err := s.employmentRepo.Row(r.Context(), ownerID, rowID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	var req employmentRequest
	if err := decodeForm(r, &req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid form values"})
		return
	}
	req.apply(row)

	if err := s.employmentRepo.Update(r.Context(), ownerID, rowID, row); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, row)
}

func (s *Service) handleDeleteEmployment(w http.ResponseWriter, r *http.Request) {
	ownerID, err := s.writeOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if err := s.employmentRepo.Delete(r.Context(), ownerID, r.PathValue("id")); err != nil {
		s.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Monthly lines (incomes, deductions, expenses)

type monthlyLineRequest struct {
	TypeID  *int     `form:"typeId"`
	Amount  *float64 `form:"amount"`
	IfOther *string  `form:"ifOther"`
}

func (req *monthlyLineRequest) apply(row *types.MonthlyLine) {
	if req.TypeID != nil {
		row.TypeID = *req.TypeID
	}
	if req.Amount != nil {
		row.Amount = *req.Amount
	}
	if req.IfOther != nil {
		row.IfOther = req.IfOther
	}
}

func (s *Service) handleListMonthly(w http.ResponseWriter, r *http.Request) {
	category, err := categoryFromRequest(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	ownerID, err := s.readOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	rows, err := s.monthlyLineRepo.ByOwner(r.Context(), category, ownerID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, rows)
}

func (s *Service) handleCreateMonthly(w http.ResponseWriter, r *http.Request) {
	category, err := categoryFromRequest(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	ownerID, err := s.writeOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	var req monthlyLineRequest
	if err := decodeForm(r, &req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid form values"})
		return
	}

	if req.TypeID == nil || *req.TypeID < 1 {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "typeId is required"})
		return
	}

	row := &types.MonthlyLine{OwnerID: ownerID, Category: category}
	req.apply(row)

	if err := s.monthlyLineRepo.Create(r.Context(), row); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, row)
}

func (s *Service) handlePatchMonthly(w http.ResponseWriter, r *http.Request) {
	category, err := categoryFromRequest(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	ownerID, err := s.writeOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	rowID := r.PathValue("id")
	row, err := s.monthlyLineRepo.Row(r.Context(), category, ownerID, rowID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	var req monthlyLineRequest
	if err := decodeForm(r, &req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid form values"})
		return
	}
	req.apply(row)

	if err := s.monthlyLineRepo.Update(r.Context(), category, ownerID, rowID, row); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, row)
}

func (s *Service) handleDeleteMonthly(w http.ResponseWriter, r *http.Request) {
	category, err := categoryFromRequest(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	ownerID, err := s.writeOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if err := s.monthlyLineRepo.Delete(r.Context(), category, ownerID, r.PathValue("id")); err != nil {
		s.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Assets

type assetRequest struct {
	TypeID           *int     `form:"typeId"`
	Description      *string  `form:"description"`
	MarketValue      *float64 `form:"marketValue"`
	NonMaritalTypeID *int     `form:"nonMaritalTypeId"`
	JudgeAward       *bool    `form:"judgeAward"`
}

func (req *assetRequest) apply(row *types.Asset) {
	if req.TypeID != nil {
		row.TypeID = *req.TypeID
	}
	if req.Description != nil {
		row.Description = *req.Description
	}
	if req.MarketValue != nil {
		row.MarketValue = *req.MarketValue
	}
	if req.NonMaritalTypeID != nil {
		row.NonMaritalTypeID = req.NonMaritalTypeID
	}
	if req.JudgeAward != nil {
		row.JudgeAward = req.JudgeAward
	}
}

func (s *Service) handleListAssets(w http.ResponseWriter, r *http.Request) {
	ownerID, err := s.readOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	rows, err := s.assetRepo.ByOwner(r.Context(), ownerID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, rows)
}

func (s *Service) handleCreateAsset(w http.ResponseWriter, r *http.Request) {
	ownerID, err := s.writeOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	var req assetRequest
	if err := decodeForm(r, &req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid form values"})
		return
	}

	if req.Description == nil || *req.Description == "" {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "description is required"})
		return
	}

	row := &types.Asset{OwnerID: ownerID}
	req.apply(row)

	if err := s.assetRepo.Create(r.Context(), row); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, row)
}

func (s *Service) handlePatchAsset(w http.ResponseWriter, r *http.Request) {
	ownerID, err := s.writeOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	rowID := r.PathValue("id")
	row, err := s.assetRepo.Row(r.Context(), ownerID, rowID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	var req assetRequest
	if err := decodeForm(r, &req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid form values"})
		return
	}
	req.apply(row)

	if err := s.assetRepo.Update(r.Context(), ownerID, rowID, row); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, row)
}

func (s *Service) handleDeleteAsset(w http.ResponseWriter, r *http.Request) {
	ownerID, err := s.writeOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if err := s.assetRepo.Delete(r.Context(), ownerID, r.PathValue("id")); err != nil {
		s.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Liabilities

type liabilityRequest struct {
	TypeID           *int     `form:"typeId"`
	Description      *string  `form:"description"`
	AmountOwed       *float64 `form:"amountOwed"`
	NonMaritalTypeID *int     `form:"nonMaritalTypeId"`
	UserOwes         *bool    `form:"userOwes"`
}

func (req *liabilityRequest) apply(row *types.Liability) {
	if req.TypeID != nil {
		row.TypeID = *req.TypeID
	}
	if req.Description != nil {
		row.Description = *req.Description
	}
	if req.AmountOwed != nil {
		row.AmountOwed = *req.AmountOwed
	}
	if req.NonMaritalTypeID != nil {
		row.NonMaritalTypeID = req.NonMaritalTypeID
	}
	if req.UserOwes != nil {
		row.UserOwes = req.UserOwes
	}
}

func (s *Service) handleListLiabilities(w http.ResponseWriter, r *http.Request) {
	ownerID, err := s.readOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	rows, err := s.liabilityRepo.ByOwner(r.Context(), ownerID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, rows)
}

func (s *Service) handleCreateLiability(w http.ResponseWriter, r *http.Request) {
	ownerID, err := s.writeOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	var req liabilityRequest
	if err := decodeForm(r, &req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid form values"})
		return
	}

	if req.Description == nil || *req.Description == "" {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "description is required"})
		return
	}

	row := &types.Liability{OwnerID: ownerID}
	req.apply(row)

	if err := s.liabilityRepo.Create(r.Context(), row); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, row)
}

func (s *Service) handlePatchLiability(w http.ResponseWriter, r *http.Request) {
	ownerID, err := s.writeOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	rowID := r.PathValue("id")
	row, err := s.liabilityRepo.Row(r.Context(), ownerID, rowID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	var req liabilityRequest
	if err := decodeForm(r, &req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid form values"})
		return
	}
	req.apply(row)

	if err := s.liabilityRepo.Update(r.Context(), ownerID, rowID, row); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, row)
}

func (s *Service) handleDeleteLiability(w http.ResponseWriter, r *http.Request) {
	ownerID, err := s.writeOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if err := s.liabilityRepo.Delete(r.Context(), ownerID, r.PathValue("id")); err != nil {
		s.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Contingent rows

type contingentAssetRequest struct {
	Description   *string  `form:"description"`
	PossibleValue *float64 `form:"possibleValue"`
}

func (req *contingentAssetRequest) apply(row *types.ContingentAsset) {
	if req.Description != nil {
		row.Description = *req.Description
	}
	if req.PossibleValue != nil {
		row.PossibleValue = *req.PossibleValue
	}
}

type contingentLiabilityRequest struct {
	Description        *string  `form:"description"`
	PossibleAmountOwed *float64 `form:"possibleAmountOwed"`
}

func (req *contingentLiabilityRequest) apply(row *types.ContingentLiability) {
	if req.Description != nil {
		row.Description = *req.Description
	}
	if req.PossibleAmountOwed != nil {
		row.PossibleAmountOwed = *req.PossibleAmountOwed
	}
}

func (s *Service) handleListContingentAssets(w http.ResponseWriter, r *http.Request) {
	ownerID, err := s.readOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	rows, err := s.assetRepo.ContingentByOwner(r.Context(), ownerID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, rows)
}

func (s *Service) handleCreateContingentAsset(w http.ResponseWriter, r *http.Request) {
	ownerID, err := s.writeOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	var req contingentAssetRequest
	if err := decodeForm(r, &req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid form values"})
		return
	}

	if req.Description == nil || *req.Description == "" {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "description is required"})
		return
	}

	row := &types.ContingentAsset{OwnerID: ownerID}
	req.apply(row)

	if err := s.assetRepo.CreateContingent(r.Context(), row); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, row)
}

func (s *Service) handlePatchContingentAsset(w http.ResponseWriter, r *http.Request) {
	ownerID, err := s.writeOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	rowID := r.PathValue("id")
	row, err := s.assetRepo.ContingentRow(r.Context(), ownerID, rowID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	var req contingentAssetRequest
	if err := decodeForm(r, &req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid form values"})
		return
	}
	req.apply(row)

	if err := s.assetRepo.UpdateContingent(r.Context(), ownerID, rowID, row); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, row)
}

func (s *Service) handleDeleteContingentAsset(w http.ResponseWriter, r *http.Request) {
	ownerID, err := s.writeOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if err := s.assetRepo.DeleteContingent(r.Context(), ownerID, r.PathValue("id")); err != nil {
		s.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleListContingentLiabilities(w http.ResponseWriter, r *http.Request) {
	ownerID, err := s.readOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	rows, err := s.liabilityRepo.ContingentByOwner(r.Context(), ownerID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, rows)
}

func (s *Service) handleCreateContingentLiability(w http.ResponseWriter, r *http.Request) {
	ownerID, err := s.writeOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	var req contingentLiabilityRequest
	if err := decodeForm(r, &req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid form values"})
		return
	}

	if req.Description == nil || *req.Description == "" {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "description is required"})
		return
	}

	row := &types.ContingentLiability{OwnerID: ownerID}
	req.apply(row)

	if err := s.liabilityRepo.CreateContingent(r.Context(), row); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, row)
}

func (s *Service) handlePatchContingentLiability(w http.ResponseWriter, r *http.Request) {
	ownerID, err := s.writeOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	rowID := r.PathValue("id")
	row, err := s.liabilityRepo.ContingentRow(r.Context(), ownerID, rowID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	var req contingentLiabilityRequest
	if err := decodeForm(r, &req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid form values"})
		return
	}
	req.apply(row)

	if err := s.liabilityRepo.UpdateContingent(r.Context(), ownerID, rowID, row); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, row)
}

func (s *Service) handleDeleteContingentLiability(w http.ResponseWriter, r *http.Request) {
	ownerID, err := s.writeOwner(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if err := s.liabilityRepo.DeleteContingent(r.Context(), ownerID, r.PathValue("id")); err != nil {
		s.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

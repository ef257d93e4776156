package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineNo      int             `json:"lineNo"`
	AccountID   string          `json:"accountID"`
	BranchID    string          `json:"branchID,omitempty"`
	DocumentRef string          `json:"documentRef,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Memo        string          `json:"memo,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry and its lines.
type JournalEntryResponse struct {
	EntryID         string                `json:"entryID"`
	EntryDate       string                `json:"entryDate"`
	Memo            string                `json:"memo"`
	Source          domain.Source         `json:"source"`
	SourceID        string                `json:"sourceID,omitempty"`
	PostedBy        string                `json:"postedBy,omitempty"`
	Status          domain.JournalStatus  `json:"status"`
	ApprovedBy      string                `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time            `json:"approvedAt,omitempty"`
	ReversesEntryID string                `json:"reversesEntryID,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	Lines           []JournalLineResponse `json:"lines"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:         e.EntryID,
		EntryDate:       e.EntryDate.Format(DateLayout),
		Memo:            e.Memo,
		Source:          e.Source,
		SourceID:        e.SourceID,
		PostedBy:        e.PostedBy,
		Status:          e.Status,
		ApprovedBy:      e.ApprovedBy,
		ApprovedAt:      e.ApprovedAt,
		ReversesEntryID: e.ReversesEntryID,
		CreatedAt:       e.CreatedAt,
		Lines:           make([]JournalLineResponse, len(e.Lines)),
	}
	for i, l := range e.Lines {
		resp.Lines[i] = JournalLineResponse{
			LineNo:      l.LineNo,
			AccountID:   l.AccountID,
			BranchID:    l.BranchID,
			DocumentRef: l.DocumentRef,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Memo:        l.Memo,
		}
	}
	return resp
}

// PostingResponse is returned by every posting endpoint.
type PostingResponse struct {
	Entry   JournalEntryResponse `json:"entry"`
	Created bool                 `json:"created"`
	Related []PostingResponse    `json:"related,omitempty"`
}

// ToPostingResponse converts a domain.PostingResult to its DTO.
func ToPostingResponse(r *domain.PostingResult) PostingResponse {
	resp := PostingResponse{
		Entry:   ToJournalEntryResponse(r.Entry),
		Created: r.Created,
	}
	for i := range r.Related {
		resp.Related = append(resp.Related, ToPostingResponse(&r.Related[i]))
	}
	return resp
}

// ManualLineRequest is one line of a manual journal.
type ManualLineRequest struct {
	AccountCode string          `json:"accountCode" binding:"required"`
	BranchID    string          `json:"branchID"`
	DocumentRef string          `json:"documentRef"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Memo        string          `json:"memo"`
}

// CreateManualJournalRequest defines the body of POST /journals.
type CreateManualJournalRequest struct {
	Date  string              `json:"date" binding:"required,datetime=2006-01-02"`
	Memo  string              `json:"memo" binding:"required"`
	Lines []ManualLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ToDomain builds the manual journal request for the posting service.
func (r CreateManualJournalRequest) ToDomain(orgID, requestedBy string) (domain.ManualJournalRequest, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return domain.ManualJournalRequest{}, err
	}
	lines := make([]domain.ManualLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.ManualLine{
			AccountCode: l.AccountCode,
			BranchID:    l.BranchID,
			DocumentRef: l.DocumentRef,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Memo:        l.Memo,
		}
	}
	return domain.ManualJournalRequest{
		OrgID:              orgID,
		Date:               date,
		Memo:               r.Memo,
		Lines:              lines,
		RequestingIdentity: requestedBy,
	}, nil
}

// ReverseEntryRequest defines the body of POST /journals/:entryID/reverse.
type ReverseEntryRequest struct {
	// Date defaults to the original entry's date when empty.
	Date string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ListJournalsParams defines query parameters for listing journal entries. SourceID
// together with Source looks up the entry recorded for one source event.
type ListJournalsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=200"`
	NextToken *string `form:"nextToken"`
	From      string  `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string  `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Source    string  `form:"source"`
	SourceID  string  `form:"sourceID"`
	Status    string  `form:"status" binding:"omitempty,oneof=POSTED PENDING_APPROVAL REJECTED"`
}

// Filter converts the query parameters to a domain filter.
func (p ListJournalsParams) Filter() (domain.EntryFilter, error) {
	var f domain.EntryFilter
	var err error
	if f.From, err = ParseOptionalDate(p.From); err != nil {
		return f, err
	}
	if f.To, err = ParseOptionalDate(p.To); err != nil {
		return f, err
	}
	if p.Source != "" {
		s := domain.Source(p.Source)
		f.Source = &s
	}
	if p.Status != "" {
		s := domain.JournalStatus(p.Status)
		f.Status = &s
	}
	return f, nil
}

// ListJournalsResponse wraps a page of journal entries.
type ListJournalsResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

package application

import (
	"context"
	"math/big"
	"strings"

	"orgnet/internal/contract"
	"orgnet/internal/domain"
)

// CreateNotice submits a createNotice call. The category is lowercased before
// validation, matching how categories are stored on chain.
func (s *Services) CreateNotice(ctx context.Context, category, description string, priority uint8, content string) (domain.Outcome, error) {
	normalized, err := validateCategory(category)
	if err != nil {
		return domain.Outcome{}, err
	}
	if strings.TrimSpace(description) == "" {
		return domain.Outcome{}, domain.Errorf(domain.ErrValidation, "notice description cannot be empty")
	}
	if int(priority) >= len(domain.PriorityLevels) {
		return domain.Outcome{}, domain.Errorf(domain.ErrValidation,
			"invalid priority %d: must be 0 (Low) through %d (%s)",
			priority, len(domain.PriorityLevels)-1, domain.PriorityLevels[len(domain.PriorityLevels)-1])
	}

	data, err := contract.NoticeManager.Pack("createNotice", normalized, description, priority, content)
	if err != nil {
		return domain.Outcome{}, domain.WrapError(domain.ErrValidation, "encoding createNotice", err)
	}
	receipt, err := s.pipeline.Execute(ctx, domain.TransactionRequest{
		To:       s.addrs.Notice,
		Function: "createNotice",
		Data:     data,
	})
	if err != nil {
		return domain.Outcome{}, err
	}

	noticeID := contract.NoticeManager.ExtractEventID(receipt.Logs, "NoticeCreated", "noticeId")
	outcome := s.outcome(domain.DomainNotice, "create_notice", noticeID, receipt)
	s.publish(ctx, outcome)
	return outcome, nil
}

// GetNotice reads one notice by id.
func (s *Services) GetNotice(ctx context.Context, noticeID uint64) (domain.Notice, error) {
	data, err := contract.NoticeManager.Pack("getNotice", new(big.Int).SetUint64(noticeID))
	if err != nil {
		return domain.Notice{}, domain.WrapError(domain.ErrValidation, "encoding getNotice", err)
	}
	out, err := s.pipeline.Query(ctx, s.addrs.Notice, data)
	if err != nil {
		return domain.Notice{}, err
	}
	notice, err := contract.DecodeNotice(out)
	if err != nil {
		return domain.Notice{}, domain.WrapError(domain.ErrDecoding, "decoding getNotice result", err)
	}
	return notice, nil
}

// NoticesByCategory reads every notice in a category.
func (s *Services) NoticesByCategory(ctx context.Context, category string) ([]domain.Notice, error) {
	normalized, err := validateCategory(category)
	if err != nil {
		return nil, err
	}
	data, err := contract.NoticeManager.Pack("getNoticesByCategory", normalized)
	if err != nil {
		return nil, domain.WrapError(domain.ErrValidation, "encoding getNoticesByCategory", err)
	}
	out, err := s.pipeline.Query(ctx, s.addrs.Notice, data)
	if err != nil {
		return nil, err
	}
	notices, err := contract.DecodeNoticeList(out)
	if err != nil {
		return nil, domain.WrapError(domain.ErrDecoding, "decoding getNoticesByCategory result", err)
	}
	return notices, nil
}

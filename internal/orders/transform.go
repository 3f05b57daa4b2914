package orders

import (
	"github.com/and161185/marketplace/internal/files"
	"github.com/and161185/marketplace/internal/model"
	"github.com/and161185/marketplace/internal/payment"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Transformer turns raw booking records into UI-ready order views. It never
// fails: missing or malformed fields degrade to safe defaults because the
// views it feeds must render whatever the backend managed to return.
type Transformer struct {
	policy files.Policy
	logger *zap.SugaredLogger
}

func NewTransformer(policy files.Policy, logger *zap.SugaredLogger) *Transformer {
	return &Transformer{policy: policy, logger: logger}
}

func (t *Transformer) Transform(raw model.RawOrder) model.OrderView {
	option := model.NormalizePaymentOption(raw.PaymentOption, raw.Price)
	if t.unknownOption(raw) {
		t.logger.Warnw("unknown payment option on order",
			"order", raw.ID, "payment_option", raw.PaymentOption)
	}

	amounts := payment.ComputeAmounts(raw.Price, option, raw.SplitDepositAmount, nil, raw.AmountPaid)

	view := model.OrderView{
		ID:              raw.ID,
		ServiceID:       raw.ServiceID,
		CreativeID:      raw.CreativeID,
		Price:           raw.Price,
		PaymentOption:   option,
		Status:          model.NormalizeStatus(raw.Status),
		DepositAmount:   amounts.Deposit,
		RemainingAmount: amounts.Remaining,
		AmountPaid:      raw.AmountPaid,
		AmountRemaining: raw.Price.Sub(raw.AmountPaid).Round(2),
		OrderDate:       raw.OrderDate,
		BookingDate:     raw.BookingDate,
		ApprovedAt:      raw.ApprovedAt,
		CompletedDate:   raw.CompletedDate,
		FilesExpired:    t.policy.Expired(raw.CompletedDate),
	}

	if raw.Files != nil {
		views := make([]model.FileView, 0, len(raw.Files))
		for _, f := range raw.Files {
			views = append(views, model.FileView{ID: f.ID, Name: f.Name, Type: f.Type})
		}
		count := len(raw.Files)
		view.Files = views
		view.FileCount = &count
		view.FileSize = files.AggregateSize(raw.Files)
	}

	return view
}

func (t *Transformer) TransformAll(raws []model.RawOrder) []model.OrderView {
	views := make([]model.OrderView, 0, len(raws))
	for _, raw := range raws {
		views = append(views, t.Transform(raw))
	}
	return views
}

func (t *Transformer) unknownOption(raw model.RawOrder) bool {
	if t.logger == nil || raw.Price.LessThanOrEqual(decimal.Zero) {
		return false
	}
	switch raw.PaymentOption {
	case "upfront", "split", "later", "":
		return false
	}
	return true
}

package usecase

import (
	"context"
	"errors"
	"funeral_quote/internal/domain/pricing"
	"funeral_quote/internal/domain/printdata"
	"funeral_quote/internal/usecase/interfaces"
	"strings"

	log "github.com/sirupsen/logrus"
)

var (
	ErrNoPrintData             = errors.New("no print data")
	ErrPrintChannelUnavailable = errors.New("print channel not configured")
)

// PrintDocument is what the document renderer receives: the resolved
// snapshot plus the taxed split computed from the snapshot's own catalog.
type PrintDocument struct {
	Snapshot printdata.Snapshot
	Document pricing.TaxSplit
}

// IPrintUseCase manages the print_data hand-off slot.
type IPrintUseCase interface {
	Publish(ctx context.Context, payload string) error
	Fetch(ctx context.Context) (PrintDocument, error)
}

type PrintUseCase struct {
	channel interfaces.IPrintChannel
	tax     pricing.TaxPolicy
	metrics interfaces.IMetricsRecorder
}

var _ IPrintUseCase = (*PrintUseCase)(nil)

func NewPrintUseCase(channel interfaces.IPrintChannel, tax pricing.TaxPolicy, metrics interfaces.IMetricsRecorder) *PrintUseCase {
	return &PrintUseCase{channel: channel, tax: tax, metrics: metrics}
}

// Publish overwrites the slot. The payload is stored as given; readers
// tolerate anything.
func (u *PrintUseCase) Publish(ctx context.Context, payload string) error {
	if u.channel == nil {
		return ErrPrintChannelUnavailable
	}
	if strings.TrimSpace(payload) == "" {
		return ErrNoPrintData
	}
	if err := u.channel.Write(ctx, payload); err != nil {
		log.Errorf("[print][usecase] write failed err=%v", err)
		return err
	}
	if u.metrics != nil {
		u.metrics.PrintPublished()
	}
	log.Debugf("[print][usecase] published payload_len=%d", len(payload))
	return nil
}

func (u *PrintUseCase) Fetch(ctx context.Context) (PrintDocument, error) {
	if u.channel == nil {
		return PrintDocument{}, ErrPrintChannelUnavailable
	}
	raw, err := u.channel.Read(ctx)
	if err != nil {
		log.Errorf("[print][usecase] read failed err=%v", err)
		return PrintDocument{}, err
	}
	return BuildPrintDocument(raw, u.tax)
}

// BuildPrintDocument decodes a payload and prices it for printing.
func BuildPrintDocument(raw string, tax pricing.TaxPolicy) (PrintDocument, error) {
	snap, err := printdata.Deserialize(raw)
	if err != nil {
		log.Debugf("[print][usecase] nothing to print err=%v", err)
		return PrintDocument{}, ErrNoPrintData
	}
	return PrintDocument{
		Snapshot: snap,
		Document: pricing.ComputeTaxSplitTotals(snap.Plan, snap.Catalog(), snap.Selection, tax),
	}, nil
}

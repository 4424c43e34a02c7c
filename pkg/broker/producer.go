package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type Producer struct {
	l               *slog.Logger
	w               *kafka.Writer
	caseEventsTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:               l,
		w:               w,
		caseEventsTopic: topic,
	}
}

type CaseCreatedEvent struct {
	Type          string `json:"type"`
	CaseID        string `json:"case_id"`
	ClientID      string `json:"client_id"`
	InvoiceNumber string `json:"invoice_number"`
	InvoiceAmount string `json:"invoice_amount"`
	Status        string `json:"status"`
}

func (p *Producer) SendCaseCreated(ctx context.Context, caseID, clientID uuid.UUID, invoiceNumber string, amount decimal.Decimal, status string) {
	event := CaseCreatedEvent{
		Type:          "case_created",
		CaseID:        caseID.String(),
		ClientID:      clientID.String(),
		InvoiceNumber: invoiceNumber,
		InvoiceAmount: amount.String(),
		Status:        status,
	}

	p.send(ctx, caseID.String(), event)
}

type CaseStatusChangedEvent struct {
	Type           string `json:"type"`
	CaseID         string `json:"case_id"`
	PreviousStatus string `json:"previous_status"`
	Status         string `json:"status"`
}

func (p *Producer) SendCaseStatusChanged(ctx context.Context, caseID uuid.UUID, prevStatus, status string) {
	event := CaseStatusChangedEvent{
		Type:           "case_status_changed",
		CaseID:         caseID.String(),
		PreviousStatus: prevStatus,
		Status:         status,
	}

	p.send(ctx, caseID.String(), event)
}

func (p *Producer) send(ctx context.Context, key string, event any) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: b,
		Topic: p.caseEventsTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

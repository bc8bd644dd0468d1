package handler_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/config"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/printshop-order-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/processor"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeReader serves msgs once and then reports a cancelled context.
type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafka.Message
	committed []kafka.Message
	closed    bool
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.msgs) == 0 {
		return kafka.Message{}, context.Canceled
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func relayMessage(offset int64, payload, signature string) kafka.Message {
	return kafka.Message{
		Topic:   "payments",
		Offset:  offset,
		Value:   []byte(payload),
		Headers: []kafka.Header{{Key: signatureHeader, Value: []byte(signature)}},
	}
}

func TestKafkaHandler_Consume(t *testing.T) {
	succeeded := entities.PaymentEvent{ID: "evt_1", Type: entities.EventPaymentSucceeded, PaymentID: "pi_abc"}
	unmatched := entities.PaymentEvent{ID: "evt_2", Type: entities.EventPaymentSucceeded, PaymentID: "pi_unknown"}
	failing := entities.PaymentEvent{ID: "evt_3", Type: entities.EventPaymentSucceeded, PaymentID: "pi_fail"}

	reader := &fakeReader{msgs: []kafka.Message{
		relayMessage(1, "ok", "sig-ok"),
		relayMessage(2, "unmatched", "sig-ok"),
		relayMessage(3, "forged", "sig-bad"),
		relayMessage(4, "failing", "sig-ok"),
	}}
	dlq := &fakeWriter{}

	parser := mocks.NewMockRelayParser(t)
	parser.EXPECT().ParseRelayedEvent([]byte("ok"), "sig-ok").Return(succeeded, nil).Once()
	parser.EXPECT().ParseRelayedEvent([]byte("unmatched"), "sig-ok").Return(unmatched, nil).Once()
	parser.EXPECT().ParseRelayedEvent([]byte("forged"), "sig-bad").Return(entities.PaymentEvent{}, entities.ErrInvalidSignature).Once()
	parser.EXPECT().ParseRelayedEvent([]byte("failing"), "sig-ok").Return(failing, nil).Once()

	events := mocks.NewMockPaymentEventHandler(t)
	events.EXPECT().HandleEvent(mock.Anything, succeeded).Return(entities.EventProcessed, nil).Once()
	events.EXPECT().HandleEvent(mock.Anything, unmatched).Return(entities.EventUnmatched, nil).Once()
	events.EXPECT().HandleEvent(mock.Anything, failing).Return("", errors.New("db down")).Once()

	h := handler.NewKafkaHandlerWithClients(discardLogger(), reader, dlq, parser, events, signatureHeader)
	h.Consume(context.Background())

	require.Len(t, reader.committed, 4)

	require.Len(t, dlq.msgs, 2)
	assert.Equal(t, "payments-dlq", dlq.msgs[0].Topic)
	assert.Equal(t, []byte("forged"), dlq.msgs[0].Value)
	assert.Equal(t, []byte("failing"), dlq.msgs[1].Value)
	assert.Equal(t, signatureHeader, dlq.msgs[1].Headers[0].Key)

	require.NoError(t, h.Close())
	assert.True(t, reader.closed)
	assert.True(t, dlq.closed)
}

func TestKafkaHandler_DLQFailureSkipsCommit(t *testing.T) {
	reader := &fakeReader{msgs: []kafka.Message{relayMessage(1, "forged", "sig-bad")}}
	dlq := &fakeWriter{err: errors.New("broker down")}

	parser := mocks.NewMockRelayParser(t)
	parser.EXPECT().ParseRelayedEvent(mock.Anything, mock.Anything).Return(entities.PaymentEvent{}, entities.ErrInvalidPayload).Once()
	events := mocks.NewMockPaymentEventHandler(t)

	h := handler.NewKafkaHandlerWithClients(discardLogger(), reader, dlq, parser, events, signatureHeader)
	h.Consume(context.Background())

	assert.Empty(t, reader.committed)
}

func TestKafkaHandler_ConsumeBacklog(t *testing.T) {
	const secret = "whsec_relay"
	payload := `{"id":"evt_9","object":"event","type":"payment_intent.succeeded","data":{"object":{"id":"pi_abc","object":"payment_intent","amount":3999,"currency":"usd"}}}`
	signedAt := time.Now().Add(-10 * time.Minute)

	reader := &fakeReader{msgs: []kafka.Message{
		relayMessage(1, payload, processor.SignPayload([]byte(payload), secret, signedAt)),
	}}
	dlq := &fakeWriter{}
	parser := processor.NewStripe(config.Stripe{SecretKey: "sk_test", WebhookSecret: secret})

	events := mocks.NewMockPaymentEventHandler(t)
	events.EXPECT().
		HandleEvent(mock.Anything, mock.MatchedBy(func(e entities.PaymentEvent) bool { return e.PaymentID == "pi_abc" })).
		Return(entities.EventProcessed, nil).Once()

	h := handler.NewKafkaHandlerWithClients(discardLogger(), reader, dlq, parser, events, processor.SignatureHeader)
	h.Consume(context.Background())

	assert.Len(t, reader.committed, 1)
	assert.Empty(t, dlq.msgs)
}

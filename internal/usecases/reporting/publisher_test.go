package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/feed-report-bot/infrastructure/integrator/telegram/mocks"
	"github.com/vfg2006/feed-report-bot/internal/domain"
	"go.uber.org/mock/gomock"
)

func testPayload() *domain.ReportPayload {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	return &domain.ReportPayload{
		Day:       day,
		Summary:   "📊 Relatório de *2024-01-15*",
		Chart:     []byte{0x89, 'P', 'N', 'G'},
		ChartName: ChartFileName(day),
	}
}

func TestTelegramPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	telegramService := mocks.NewMockTelegramIntegrator(ctrl)
	payload := testPayload()

	gomock.InOrder(
		telegramService.EXPECT().SendText(gomock.Any(), payload.Summary).Return(nil).Times(1),
		telegramService.EXPECT().SendPhoto(gomock.Any(), "report_2024-01-15.png", payload.Chart).Return(nil).Times(1),
	)

	err := NewPublisher(telegramService).Publish(context.Background(), payload)
	require.NoError(t, err)
}

func TestTelegramPublisher_TextFailureSkipsPhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	telegramService := mocks.NewMockTelegramIntegrator(ctrl)
	sendErr := errors.New("Bad Request: chat not found")

	telegramService.EXPECT().SendText(gomock.Any(), gomock.Any()).Return(sendErr)
	telegramService.EXPECT().SendPhoto(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := NewPublisher(telegramService).Publish(context.Background(), testPayload())
	require.Error(t, err)
	assert.ErrorIs(t, err, sendErr)
	assert.Contains(t, err.Error(), "erro ao enviar resumo do relatório")
}

func TestTelegramPublisher_PhotoFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	telegramService := mocks.NewMockTelegramIntegrator(ctrl)
	sendErr := errors.New("Request Entity Too Large")

	gomock.InOrder(
		telegramService.EXPECT().SendText(gomock.Any(), gomock.Any()).Return(nil),
		telegramService.EXPECT().SendPhoto(gomock.Any(), gomock.Any(), gomock.Any()).Return(sendErr),
	)

	err := NewPublisher(telegramService).Publish(context.Background(), testPayload())
	assert.ErrorIs(t, err, sendErr)
}

func TestTelegramPublisher_MissingPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := NewPublisher(mocks.NewMockTelegramIntegrator(ctrl))

	assert.ErrorIs(t, publisher.Publish(context.Background(), nil), ErrMissingPayload)
	assert.ErrorIs(t, publisher.Publish(context.Background(), &domain.ReportPayload{Summary: "texto"}), ErrMissingPayload)
}

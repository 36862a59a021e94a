package gate

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/loadmatrix/driverd/internal/config"
	"github.com/loadmatrix/driverd/internal/gate/mocks"
	"github.com/loadmatrix/driverd/internal/geoloc"
	"github.com/loadmatrix/driverd/internal/models"
)

// newTestGate — вспомогательная функция для создания шлюза с моками.
func newTestGate(t *testing.T) (*Gate, *mocks.MockConsentStore, *mocks.MockLocator, *mocks.MockReporterControl) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockConsentStore(ctrl)
	locatorMock := mocks.NewMockLocator(ctrl)
	reporterMock := mocks.NewMockReporterControl(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := testConfig()

	g := New(cfg, storeMock, locatorMock, reporterMock, logger)
	return g, storeMock, locatorMock, reporterMock
}

func testConfig() *config.Config {
	return &config.Config{
		ConsentTTL:           7 * 24 * time.Hour,
		ResumeNoticeAfter:    time.Hour,
		SilentProbeTimeout:   5 * time.Second,
		SilentMaxFixAge:      5 * time.Minute,
		FirstProbeTimeout:    10 * time.Second,
		PeriodicProbeTimeout: 8 * time.Second,
		PeriodicMaxFixAge:    30 * time.Second,
		ReportInterval:       7 * time.Second,
	}
}

func sampleFixture() *models.LocationSample {
	return &models.LocationSample{
		Lat:        55.751244,
		Lng:        37.618423,
		CapturedAt: time.Now().UnixMilli(),
	}
}

func TestMount_NewUser_FullProbeOpensGate(t *testing.T) {
	// Подготовка
	g, storeMock, locatorMock, reporterMock := newTestGate(t)
	ctx := context.Background()
	userID := "driver-17"
	sample := sampleFixture()

	// Ожидания
	storeMock.EXPECT().Get(ctx, userID).Return(nil, nil).Times(1)

	// Первая проба: длинный таймаут, закешированные измерения запрещены
	locatorMock.EXPECT().
		Current(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, opts geoloc.ProbeOptions) (*models.LocationSample, error) {
			assert.False(t, opts.HighAccuracy)
			assert.Equal(t, 10*time.Second, opts.Timeout)
			assert.Equal(t, time.Duration(0), opts.MaxFixAge)
			return sample, nil
		}).Times(1)

	storeMock.EXPECT().
		Set(ctx, gomock.Any()).
		Do(func(_ context.Context, record *models.ConsentRecord) {
			assert.Equal(t, userID, record.UserID)
			assert.Equal(t, models.ConsentGranted, record.Status)
			assert.WithinDuration(t, time.Now(), record.GrantedAt, time.Second)
		}).Return(nil).Times(1)

	reporterMock.EXPECT().Start(ctx, sample).Return(nil).Times(1)

	// Действие
	state := g.Mount(ctx, userID)

	// Проверки
	assert.Equal(t, models.GateOpen, state)

	gotState, modal, toasts := g.Snapshot()
	assert.Equal(t, models.GateOpen, gotState)
	assert.Nil(t, modal)
	require.Len(t, toasts, 1)
	assert.Equal(t, models.NoticeToast, toasts[0].Kind)
	assert.Equal(t, models.NoticeLocationOn, toasts[0].Code)

	// Тосты отдаются один раз
	_, _, toasts = g.Snapshot()
	assert.Empty(t, toasts)
}

func TestMount_ValidConsent_SilentProbeWithResumeToast(t *testing.T) {
	// Подготовка
	g, storeMock, locatorMock, reporterMock := newTestGate(t)
	ctx := context.Background()
	userID := "driver-17"
	sample := sampleFixture()
	// Согласию два часа: больше порога тоста, меньше TTL
	record := &models.ConsentRecord{
		UserID:    userID,
		Status:    models.ConsentGranted,
		GrantedAt: time.Now().Add(-2 * time.Hour),
	}

	// Ожидания
	storeMock.EXPECT().Get(ctx, userID).Return(record, nil).Times(1)

	// Тихая проба: короткий таймаут, допускается измерение до пяти минут
	locatorMock.EXPECT().
		Current(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, opts geoloc.ProbeOptions) (*models.LocationSample, error) {
			assert.False(t, opts.HighAccuracy)
			assert.Equal(t, 5*time.Second, opts.Timeout)
			assert.Equal(t, 5*time.Minute, opts.MaxFixAge)
			return sample, nil
		}).Times(1)

	reporterMock.EXPECT().Start(ctx, sample).Return(nil).Times(1)

	// Действие
	state := g.Mount(ctx, userID)

	// Проверки
	assert.Equal(t, models.GateOpen, state)

	_, modal, toasts := g.Snapshot()
	assert.Nil(t, modal)
	require.Len(t, toasts, 1)
	assert.Equal(t, models.NoticeSessionResumed, toasts[0].Code)
}

func TestMount_FreshConsent_SilentProbeWithoutToast(t *testing.T) {
	// Подготовка
	g, storeMock, locatorMock, reporterMock := newTestGate(t)
	ctx := context.Background()
	userID := "driver-17"
	// Согласию полчаса: открываемся молча, без тоста "сессия возобновлена"
	record := &models.ConsentRecord{
		UserID:    userID,
		Status:    models.ConsentGranted,
		GrantedAt: time.Now().Add(-30 * time.Minute),
	}

	// Ожидания
	storeMock.EXPECT().Get(ctx, userID).Return(record, nil).Times(1)
	locatorMock.EXPECT().Current(ctx, gomock.Any()).Return(sampleFixture(), nil).Times(1)
	reporterMock.EXPECT().Start(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	state := g.Mount(ctx, userID)

	// Проверки
	assert.Equal(t, models.GateOpen, state)
	_, _, toasts := g.Snapshot()
	assert.Empty(t, toasts)
}

func TestMount_StaleConsent_FallsBackToFullProbe(t *testing.T) {
	// Подготовка
	g, storeMock, locatorMock, reporterMock := newTestGate(t)
	ctx := context.Background()
	userID := "driver-17"
	// Согласию восемь дней: TTL истек, пользователь снова как новый
	record := &models.ConsentRecord{
		UserID:    userID,
		Status:    models.ConsentGranted,
		GrantedAt: time.Now().Add(-8 * 24 * time.Hour),
	}

	// Ожидания
	storeMock.EXPECT().Get(ctx, userID).Return(record, nil).Times(1)

	// Просроченное согласие ведет по полной пробе, а не по тихой
	locatorMock.EXPECT().
		Current(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, opts geoloc.ProbeOptions) (*models.LocationSample, error) {
			assert.Equal(t, 10*time.Second, opts.Timeout)
			assert.Equal(t, time.Duration(0), opts.MaxFixAge)
			return sampleFixture(), nil
		}).Times(1)

	storeMock.EXPECT().Set(ctx, gomock.Any()).Return(nil).Times(1)
	reporterMock.EXPECT().Start(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	state := g.Mount(ctx, userID)

	// Проверки
	assert.Equal(t, models.GateOpen, state)
	_, _, toasts := g.Snapshot()
	require.Len(t, toasts, 1)
	assert.Equal(t, models.NoticeLocationOn, toasts[0].Code)
}

func TestMount_SilentProbeDenied_ErasesCacheAndBlocks(t *testing.T) {
	// Подготовка
	g, storeMock, locatorMock, reporterMock := newTestGate(t)
	ctx := context.Background()
	userID := "driver-17"
	record := &models.ConsentRecord{
		UserID:    userID,
		Status:    models.ConsentGranted,
		GrantedAt: time.Now().Add(-2 * time.Hour),
	}
	probeErr := geoloc.NewProbeError(geoloc.CodePermissionDenied, errors.New("user revoked access"))

	// Ожидания
	storeMock.EXPECT().Get(ctx, userID).Return(record, nil).Times(1)
	locatorMock.EXPECT().Current(ctx, gomock.Any()).Return(nil, probeErr).Times(1)
	// Сбой тихой пробы стирает кеш: пользователь снова как новый
	storeMock.EXPECT().Delete(ctx, userID).Return(nil).Times(1)
	reporterMock.EXPECT().Stop().Times(1)

	// Действие
	state := g.Mount(ctx, userID)

	// Проверки
	assert.Equal(t, models.GateBlockedNeedConsent, state)

	_, modal, _ := g.Snapshot()
	require.NotNil(t, modal)
	assert.Equal(t, models.NoticeModal, modal.Kind)
	assert.Equal(t, models.NoticePermissionDenied, modal.Code)
	assert.True(t, modal.Retryable)
}

func TestMount_FullProbeDenied_CachesDenialAndBlocks(t *testing.T) {
	// Подготовка
	g, storeMock, locatorMock, reporterMock := newTestGate(t)
	ctx := context.Background()
	userID := "driver-17"
	probeErr := geoloc.NewProbeError(geoloc.CodePermissionDenied, errors.New("prompt dismissed"))

	// Ожидания
	storeMock.EXPECT().Get(ctx, userID).Return(nil, nil).Times(1)
	locatorMock.EXPECT().Current(ctx, gomock.Any()).Return(nil, probeErr).Times(1)
	storeMock.EXPECT().
		Set(ctx, gomock.Any()).
		Do(func(_ context.Context, record *models.ConsentRecord) {
			assert.Equal(t, models.ConsentDenied, record.Status)
		}).Return(nil).Times(1)
	reporterMock.EXPECT().Stop().Times(1)

	// Действие
	state := g.Mount(ctx, userID)

	// Проверки
	assert.Equal(t, models.GateBlockedNeedConsent, state)
	_, modal, _ := g.Snapshot()
	require.NotNil(t, modal)
	assert.Equal(t, models.NoticePermissionDenied, modal.Code)
	assert.True(t, modal.Retryable)
}

func TestMount_FullProbeTimeout_BlocksWithRetryableModal(t *testing.T) {
	// Подготовка
	g, storeMock, locatorMock, reporterMock := newTestGate(t)
	ctx := context.Background()
	userID := "driver-17"
	probeErr := geoloc.NewProbeError(geoloc.CodeTimeout, context.DeadlineExceeded)

	// Ожидания
	storeMock.EXPECT().Get(ctx, userID).Return(nil, nil).Times(1)
	locatorMock.EXPECT().Current(ctx, gomock.Any()).Return(nil, probeErr).Times(1)
	storeMock.EXPECT().Set(ctx, gomock.Any()).Return(nil).Times(1)
	reporterMock.EXPECT().Stop().Times(1)

	// Действие
	state := g.Mount(ctx, userID)

	// Проверки
	assert.Equal(t, models.GateBlockedNeedConsent, state)
	_, modal, _ := g.Snapshot()
	require.NotNil(t, modal)
	assert.Equal(t, models.NoticeTimeout, modal.Code)
	assert.True(t, modal.Retryable)
}

func TestMount_CapabilityAbsent_FatalModal(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockConsentStore(ctrl)
	reporterMock := mocks.NewMockReporterControl(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	// Геолокации на устройстве нет вообще
	g := New(testConfig(), storeMock, nil, reporterMock, logger)
	ctx := context.Background()

	// Ожидания
	reporterMock.EXPECT().Stop().Times(1)
	// Кеш согласий даже не читается

	// Действие
	state := g.Mount(ctx, "driver-17")

	// Проверки
	assert.Equal(t, models.GateBlockedNeedConsent, state)
	_, modal, _ := g.Snapshot()
	require.NotNil(t, modal)
	assert.Equal(t, models.NoticeCapabilityAbsent, modal.Code)
	assert.False(t, modal.Retryable)

	// Повтор при фатальной ошибке ничего не делает, новых проб нет
	retryState := g.Retry(ctx)
	assert.Equal(t, models.GateBlockedNeedConsent, retryState)
}

func TestMount_ConsentCacheUnavailable_TreatedAsAbsent(t *testing.T) {
	// Подготовка
	g, storeMock, locatorMock, reporterMock := newTestGate(t)
	ctx := context.Background()
	userID := "driver-17"

	// Ожидания
	storeMock.EXPECT().Get(ctx, userID).Return(nil, errors.New("redis: connection refused")).Times(1)
	// Недоступный кеш ведет по полной пробе
	locatorMock.EXPECT().
		Current(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, opts geoloc.ProbeOptions) (*models.LocationSample, error) {
			assert.Equal(t, time.Duration(0), opts.MaxFixAge)
			return sampleFixture(), nil
		}).Times(1)
	storeMock.EXPECT().Set(ctx, gomock.Any()).Return(nil).Times(1)
	reporterMock.EXPECT().Start(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	state := g.Mount(ctx, userID)

	// Проверки
	assert.Equal(t, models.GateOpen, state)
}

func TestRetry_AfterTimeout_OpensGate(t *testing.T) {
	// Подготовка
	g, storeMock, locatorMock, reporterMock := newTestGate(t)
	ctx := context.Background()
	userID := "driver-17"
	probeErr := geoloc.NewProbeError(geoloc.CodeTimeout, context.DeadlineExceeded)
	sample := sampleFixture()

	// Ожидания: первая проба падает по таймауту
	storeMock.EXPECT().Get(ctx, userID).Return(nil, nil).Times(1)
	first := locatorMock.EXPECT().Current(ctx, gomock.Any()).Return(nil, probeErr).Times(1)
	storeMock.EXPECT().Set(ctx, gomock.Any()).Return(nil).Times(2) // denied, затем granted
	reporterMock.EXPECT().Stop().Times(1)

	// Ожидания: повтор успешен
	locatorMock.EXPECT().Current(ctx, gomock.Any()).Return(sample, nil).Times(1).After(first)
	reporterMock.EXPECT().Start(ctx, sample).Return(nil).Times(1)

	// Действие
	state := g.Mount(ctx, userID)
	require.Equal(t, models.GateBlockedNeedConsent, state)

	retryState := g.Retry(ctx)

	// Проверки
	assert.Equal(t, models.GateOpen, retryState)
	_, modal, toasts := g.Snapshot()
	assert.Nil(t, modal)
	require.Len(t, toasts, 1)
	assert.Equal(t, models.NoticeLocationOn, toasts[0].Code)
}

func TestRetry_WhenOpen_NoOp(t *testing.T) {
	// Подготовка
	g, storeMock, locatorMock, reporterMock := newTestGate(t)
	ctx := context.Background()
	userID := "driver-17"

	// Ожидания: ровно одна проба за весь тест
	storeMock.EXPECT().Get(ctx, userID).Return(nil, nil).Times(1)
	locatorMock.EXPECT().Current(ctx, gomock.Any()).Return(sampleFixture(), nil).Times(1)
	storeMock.EXPECT().Set(ctx, gomock.Any()).Return(nil).Times(1)
	reporterMock.EXPECT().Start(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	g.Mount(ctx, userID)
	state := g.Retry(ctx)

	// Проверки
	assert.Equal(t, models.GateOpen, state)
}

func TestRevoke_MidSession_BlocksAndErasesCache(t *testing.T) {
	// Подготовка
	g, storeMock, locatorMock, reporterMock := newTestGate(t)
	ctx := context.Background()
	userID := "driver-17"
	cause := errors.New("permission revoked in system settings")

	// Ожидания: открытие
	storeMock.EXPECT().Get(ctx, userID).Return(nil, nil).Times(1)
	locatorMock.EXPECT().Current(ctx, gomock.Any()).Return(sampleFixture(), nil).Times(1)
	storeMock.EXPECT().Set(ctx, gomock.Any()).Return(nil).Times(1)
	reporterMock.EXPECT().Start(ctx, gomock.Any()).Return(nil).Times(1)

	// Ожидания: отзыв посреди смены
	reporterMock.EXPECT().Stop().Times(1)
	storeMock.EXPECT().Delete(gomock.Any(), userID).Return(nil).Times(1)

	// Действие
	g.Mount(ctx, userID)
	g.Revoke(cause)

	// Проверки
	state, modal, _ := g.Snapshot()
	assert.Equal(t, models.GateBlockedNeedConsent, state)
	require.NotNil(t, modal)
	assert.Equal(t, models.NoticePermissionDenied, modal.Code)
	assert.True(t, modal.Retryable)
}

func TestClose_DuringProbe_LateResultIgnored(t *testing.T) {
	// Подготовка
	g, storeMock, locatorMock, reporterMock := newTestGate(t)
	ctx := context.Background()
	userID := "driver-17"

	// Ожидания: панель размонтируется, пока проба еще в полете
	storeMock.EXPECT().Get(ctx, userID).Return(nil, nil).Times(1)
	reporterMock.EXPECT().Stop().Times(1) // из Close
	locatorMock.EXPECT().
		Current(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ geoloc.ProbeOptions) (*models.LocationSample, error) {
			g.Close()
			return sampleFixture(), nil
		}).Times(1)
	storeMock.EXPECT().Set(ctx, gomock.Any()).Return(nil).Times(1)
	// Старт репортера после Close не вызывается

	// Действие
	state := g.Mount(ctx, userID)

	// Проверки: поздний успех пробы не открыл шлюз
	assert.Equal(t, models.GateChecking, state)
}

func TestClose_Idempotent(t *testing.T) {
	// Подготовка
	g, _, _, reporterMock := newTestGate(t)

	// Ожидания
	reporterMock.EXPECT().Stop().Times(1)

	// Действие и проверки: повторный Close не трогает репортер
	g.Close()
	g.Close()
}

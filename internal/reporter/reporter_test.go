package reporter

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/loadmatrix/driverd/internal/config"
	"github.com/loadmatrix/driverd/internal/geoloc"
	"github.com/loadmatrix/driverd/internal/models"
	"github.com/loadmatrix/driverd/internal/reporter/mocks"
)

func TestMain(m *testing.M) {
	// Репортер владеет горутиной цикла: ни один тест не должен ее терять
	goleak.VerifyTestMain(m)
}

// newTestReporter — вспомогательная функция для создания репортера с моками.
func newTestReporter(t *testing.T, interval time.Duration, onPermissionLost func(err error)) (*Reporter, *mocks.MockLocator, *mocks.MockPusher) {
	ctrl := gomock.NewController(t)
	locatorMock := mocks.NewMockLocator(ctrl)
	pusherMock := mocks.NewMockPusher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		ReportInterval:       interval,
		PeriodicProbeTimeout: 8 * time.Second,
		PeriodicMaxFixAge:    30 * time.Second,
	}

	r := New(cfg, locatorMock, pusherMock, logger, onPermissionLost)
	return r, locatorMock, pusherMock
}

func sampleAt(lat, lng float64) *models.LocationSample {
	return &models.LocationSample{
		Lat:        lat,
		Lng:        lng,
		CapturedAt: time.Now().UnixMilli(),
	}
}

func TestStart_PushesInitialSampleImmediately(t *testing.T) {
	// Подготовка
	r, locatorMock, pusherMock := newTestReporter(t, time.Hour, nil)
	initial := sampleAt(55.751244, 37.618423)
	pushed := make(chan struct{}, 1)

	// Ожидания: длинный интервал, до Stop тикер не сработает
	locatorMock.EXPECT().Current(gomock.Any(), gomock.Any()).Times(0)
	pusherMock.EXPECT().
		PushLocation(gomock.Any(), initial.Lat, initial.Lng).
		DoAndReturn(func(_ context.Context, _, _ float64) error {
			pushed <- struct{}{}
			return nil
		}).Times(1)

	// Действие
	err := r.Start(context.Background(), initial)
	require.NoError(t, err)

	// Проверки: переданная шлюзом проба ушла без повторного измерения
	select {
	case <-pushed:
	case <-time.After(time.Second):
		t.Fatal("initial sample was not pushed")
	}
	assert.Equal(t, initial, r.Current())

	r.Stop()
}

func TestStart_SecondStartRejected(t *testing.T) {
	// Подготовка
	r, _, pusherMock := newTestReporter(t, time.Hour, nil)
	initial := sampleAt(55.0, 37.0)

	pusherMock.EXPECT().PushLocation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// Действие
	err := r.Start(context.Background(), initial)
	require.NoError(t, err)

	// Проверки: на одну сессию допустим ровно один таймер
	err = r.Start(context.Background(), initial)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	r.Stop()
}

func TestLoop_PeriodicProbePushesFreshSample(t *testing.T) {
	// Подготовка
	r, locatorMock, pusherMock := newTestReporter(t, 15*time.Millisecond, nil)
	initial := sampleAt(55.0, 37.0)
	fresh := sampleAt(55.1, 37.1)
	freshPushed := make(chan struct{})
	var once atomic.Bool

	// Ожидания
	locatorMock.EXPECT().
		Current(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts geoloc.ProbeOptions) (*models.LocationSample, error) {
			// Периодическая проба: высокая точность
			assert.True(t, opts.HighAccuracy)
			return fresh, nil
		}).AnyTimes()
	pusherMock.EXPECT().
		PushLocation(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, lat, _ float64) error {
			if lat == fresh.Lat && once.CompareAndSwap(false, true) {
				close(freshPushed)
			}
			return nil
		}).AnyTimes()

	// Действие
	require.NoError(t, r.Start(context.Background(), initial))

	// Проверки
	select {
	case <-freshPushed:
	case <-time.After(time.Second):
		t.Fatal("periodic sample was not pushed")
	}

	r.Stop()
	assert.Equal(t, fresh, r.Current())
}

func TestLoop_PermissionLost_StopsAndEscalates(t *testing.T) {
	// Подготовка
	var pushes atomic.Int64
	lost := make(chan error, 1)
	r, locatorMock, pusherMock := newTestReporter(t, 10*time.Millisecond, func(err error) {
		lost <- err
	})
	initial := sampleAt(55.0, 37.0)
	denied := geoloc.NewProbeError(geoloc.CodePermissionDenied, errors.New("revoked in settings"))

	// Ожидания
	locatorMock.EXPECT().Current(gomock.Any(), gomock.Any()).Return(nil, denied).Times(1)
	pusherMock.EXPECT().
		PushLocation(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ float64) error {
			pushes.Add(1)
			return nil
		}).AnyTimes()

	// Действие
	require.NoError(t, r.Start(context.Background(), initial))

	// Проверки: потеря разрешения эскалируется наверх
	select {
	case err := <-lost:
		assert.True(t, geoloc.IsPermissionDenied(err))
	case <-time.After(time.Second):
		t.Fatal("permission loss was not escalated")
	}

	// Цикл погасил себя сам: Stop возвращается сразу, не зависая
	r.Stop()

	// Отправок больше нет, ушла только стартовая проба
	got := pushes.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, got, pushes.Load())
	assert.EqualValues(t, 1, got)
}

func TestLoop_TransientProbeFailure_Survives(t *testing.T) {
	// Подготовка
	r, locatorMock, pusherMock := newTestReporter(t, 10*time.Millisecond, func(err error) {
		t.Errorf("unexpected permission loss escalation: %v", err)
	})
	initial := sampleAt(55.0, 37.0)
	fresh := sampleAt(55.2, 37.2)
	unavailable := geoloc.NewProbeError(geoloc.CodePositionUnavailable, errors.New("no fix"))
	freshPushed := make(chan struct{})
	var once atomic.Bool

	// Ожидания: первые две пробы падают, третья успешна
	gomock.InOrder(
		locatorMock.EXPECT().Current(gomock.Any(), gomock.Any()).Return(nil, unavailable).Times(1),
		locatorMock.EXPECT().Current(gomock.Any(), gomock.Any()).
			Return(nil, geoloc.NewProbeError(geoloc.CodeTimeout, context.DeadlineExceeded)).Times(1),
		locatorMock.EXPECT().Current(gomock.Any(), gomock.Any()).Return(fresh, nil).AnyTimes(),
	)
	pusherMock.EXPECT().
		PushLocation(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, lat, _ float64) error {
			if lat == fresh.Lat && once.CompareAndSwap(false, true) {
				close(freshPushed)
			}
			return nil
		}).AnyTimes()

	// Действие
	require.NoError(t, r.Start(context.Background(), initial))

	// Проверки: недоступность позиции и таймауты цикл переживает
	select {
	case <-freshPushed:
	case <-time.After(time.Second):
		t.Fatal("loop did not survive transient probe failures")
	}

	r.Stop()
}

func TestLoop_PushFailure_Swallowed(t *testing.T) {
	// Подготовка
	r, locatorMock, pusherMock := newTestReporter(t, 10*time.Millisecond, nil)
	initial := sampleAt(55.0, 37.0)
	secondPush := make(chan struct{})
	var count atomic.Int64

	// Ожидания: сетевой сбой отправки не останавливает цикл
	locatorMock.EXPECT().Current(gomock.Any(), gomock.Any()).Return(sampleAt(55.3, 37.3), nil).AnyTimes()
	pusherMock.EXPECT().
		PushLocation(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ float64) error {
			if count.Add(1) == 2 {
				close(secondPush)
			}
			return errors.New("backend unreachable")
		}).AnyTimes()

	// Действие
	require.NoError(t, r.Start(context.Background(), initial))

	// Проверки
	select {
	case <-secondPush:
	case <-time.After(time.Second):
		t.Fatal("loop stopped after a push failure")
	}

	r.Stop()
}

func TestStop_NoFurtherPushes(t *testing.T) {
	// Подготовка
	r, locatorMock, pusherMock := newTestReporter(t, 10*time.Millisecond, nil)
	initial := sampleAt(55.0, 37.0)
	var pushes atomic.Int64

	// Ожидания
	locatorMock.EXPECT().Current(gomock.Any(), gomock.Any()).Return(sampleAt(55.4, 37.4), nil).AnyTimes()
	pusherMock.EXPECT().
		PushLocation(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ float64) error {
			pushes.Add(1)
			return nil
		}).AnyTimes()

	// Действие
	require.NoError(t, r.Start(context.Background(), initial))
	time.Sleep(35 * time.Millisecond)
	r.Stop()

	// Проверки: после возврата Stop ни одной новой отправки
	got := pushes.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, got, pushes.Load())

	// Повторный Stop безопасен
	r.Stop()
}

func TestStop_SessionContextCancelled(t *testing.T) {
	// Подготовка
	r, locatorMock, pusherMock := newTestReporter(t, 10*time.Millisecond, nil)
	initial := sampleAt(55.0, 37.0)
	ctx, cancel := context.WithCancel(context.Background())

	locatorMock.EXPECT().Current(gomock.Any(), gomock.Any()).Return(sampleAt(55.5, 37.5), nil).AnyTimes()
	pusherMock.EXPECT().PushLocation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// Действие
	require.NoError(t, r.Start(ctx, initial))
	cancel()

	// Проверки: отмена контекста сессии гасит цикл без явного Stop
	require.Eventually(t, func() bool {
		r.mu.Lock()
		defer r.mu.Unlock()
		return !r.running
	}, time.Second, 5*time.Millisecond)

	r.Stop()
}

func TestPushNow_WithoutKnownSample_ProbesOnce(t *testing.T) {
	// Подготовка
	r, locatorMock, pusherMock := newTestReporter(t, time.Hour, nil)
	fresh := sampleAt(55.6, 37.6)
	ctx := context.Background()

	// Ожидания: измерения еще нет, выполняется одна разовая проба и одна отправка
	locatorMock.EXPECT().Current(ctx, gomock.Any()).Return(fresh, nil).Times(1)
	pusherMock.EXPECT().PushLocation(ctx, fresh.Lat, fresh.Lng).Return(nil).Times(1)

	// Действие
	sample, err := r.PushNow(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, fresh, sample)
	assert.Equal(t, fresh, r.Current())
}

func TestPushNow_ReusesLastKnownSample(t *testing.T) {
	// Подготовка
	r, locatorMock, pusherMock := newTestReporter(t, time.Hour, nil)
	initial := sampleAt(55.7, 37.7)
	ctx := context.Background()

	// Ожидания: проба не выполняется, позиция уже известна
	locatorMock.EXPECT().Current(gomock.Any(), gomock.Any()).Times(0)
	pusherMock.EXPECT().PushLocation(gomock.Any(), initial.Lat, initial.Lng).Return(nil).Times(2) // старт + ручная

	// Действие
	require.NoError(t, r.Start(ctx, initial))
	sample, err := r.PushNow(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, initial, sample)

	r.Stop()
}

func TestPushNow_ProbeFailure(t *testing.T) {
	// Подготовка
	r, locatorMock, pusherMock := newTestReporter(t, time.Hour, nil)
	ctx := context.Background()
	probeErr := geoloc.NewProbeError(geoloc.CodePositionUnavailable, errors.New("no fix"))

	// Ожидания
	locatorMock.EXPECT().Current(ctx, gomock.Any()).Return(nil, probeErr).Times(1)
	pusherMock.EXPECT().PushLocation(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	sample, err := r.PushNow(ctx)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, sample)
	assert.ErrorContains(t, err, "manual probe failed")
}

package notifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/visit/internal/adapters/notifier"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestNotifier_MessageLevels(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	n := notifier.New(log)

	gomock.InOrder(
		log.EXPECT().Info("hello"),
		log.EXPECT().Warn("careful"),
		log.EXPECT().Error(gomock.Any()).Do(func(err error) {
			assert.EqualError(t, err, "engine died")
		}),
	)

	n.Message(domain.LogLevelInfo, "hello")
	n.Message(domain.LogLevelWarn, "careful")
	n.Message(domain.LogLevelError, "engine died")
}

func TestNotifier_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	n := notifier.New(log)
	key := domain.NewEngineKey("hpc")

	log.EXPECT().Info("[hpc] launching").Times(1)

	n.Status(key, "launching")
	n.Status(key, "launching")
	assert.Equal(t, map[domain.EngineKey]string{key: "launching"}, n.Statuses())

	n.ClearStatus(key)
	assert.Empty(t, n.Statuses())
}

func TestNotifier_Sessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	n := notifier.New(log)
	a, b := domain.NewEngineKey("a"), domain.NewSimulationKey("b", "sim")

	gomock.InOrder(
		log.EXPECT().Info("engines: a, b:sim"),
		log.EXPECT().Info("no engines running"),
		log.EXPECT().Warn("plots on a must be regenerated"),
	)

	n.EngineListChanged([]domain.EngineKey{a, b})
	assert.Equal(t, []domain.EngineKey{a, b}, n.Sessions())

	n.EngineListChanged(nil)
	assert.Empty(t, n.Sessions())

	n.InvalidateNetworks(a)
	assert.Equal(t, 1, n.Invalidations(a))
	assert.Zero(t, n.Invalidations(b))
}


package cost

import (
	"testing"

	"craft-planner/core/procurement"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	feature := NewFeature(testSource(), testPrices(), procurement.Config{}, zap.NewNop())

	assert.Equal(t, "cost", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())
	assert.NoError(t, feature.Load(fiber.New()))
}

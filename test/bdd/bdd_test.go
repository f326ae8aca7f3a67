package bdd

import (
	"testing"

	"github.com/cucumber/godog"

	"github.com/braydenokley13-ux/T101-M1-L2/test/bdd/steps"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/domain", "features/application"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	steps.InitializeTaxScenario(sc)
	steps.InitializeSeasonScenario(sc)
	steps.InitializeSaveSlotScenario(sc)
}

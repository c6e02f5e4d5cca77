package scootertests

import (
	"github.com/scooter-qa/scooter-contract-tests/client"
	"github.com/scooter-qa/scooter-contract-tests/datagen"
	"github.com/scooter-qa/scooter-contract-tests/framework"
)

func RunTestSuite(
	spec client.RequestSpec,
	gen *datagen.Generator,
	contract Contract,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	env := &environment{
		spec:     spec,
		gen:      gen,
		contract: contract,
	}
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, env)

		t.Run("courier creation", DoCourierCreationTests)
		t.Run("courier login", DoCourierLoginTests)
		t.Run("courier lifecycle", DoCourierLifecycleTests)
		t.Run("orders", DoOrderTests)
	})
}

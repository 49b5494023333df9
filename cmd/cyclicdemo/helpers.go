package main

import (
	"cyclicmem/internal/demo"
)

func loadScenario(name string) (demo.Scenario, error) {
	scenarios, err := demo.Load(scenarioFile)
	if err != nil {
		return demo.Scenario{}, err
	}
	return demo.Find(scenarios, name)
}

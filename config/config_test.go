package config

import "testing"

func TestDiffersParse(t *testing.T) {
	saved := CurrentEnv

	defer func() {
		CurrentEnv = saved
	}()

	d := Differs[string]{Staging: "https://staging.litten.site", Prod: "https://litten.site"}

	CurrentEnv = CurrentEnvStaging

	if d.Parse() != "https://staging.litten.site" {
		t.Error("Expected staging value, got", d.Parse())
	}

	CurrentEnv = CurrentEnvProd

	if d.Parse() != "https://litten.site" {
		t.Error("Expected prod value, got", d.Parse())
	}
}

func TestDiffersParsePanicsOnBadEnv(t *testing.T) {
	saved := CurrentEnv

	defer func() {
		CurrentEnv = saved

		if recover() == nil {
			t.Error("Expected a panic for an unknown environment")
		}
	}()

	CurrentEnv = "dev"

	d := Differs[int]{Staging: 1, Prod: 2}
	d.Parse()
}

package controllers

import (
	"net/http"

	"github.com/ensigotrace/ensigotrace-backend/api/responses"
	"github.com/ensigotrace/ensigotrace-backend/internal/fixtures"
)

// Fixture endpoints serve the static demo entities behind the dashboard
// pages. Nothing here touches the durable store.

func FixtureSeedBatches() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, fixtures.SeedBatches())
	}
}

func FixtureMotherTrees() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, fixtures.MotherTrees())
	}
}

func FixtureNurseries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, fixtures.Nurseries())
	}
}

func FixtureRestorationProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, fixtures.RestorationProjects())
	}
}

func FixtureAnalytics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, fixtures.PlatformAnalytics())
	}
}

package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ensigotrace/ensigotrace-backend/api/responses"
	"github.com/ensigotrace/ensigotrace-backend/api/validators"
	"github.com/ensigotrace/ensigotrace-backend/internal/collections"
	pkgerrors "github.com/ensigotrace/ensigotrace-backend/pkg/errors"
	"github.com/ensigotrace/ensigotrace-backend/pkg/logger"
)

// CollectionsList returns every seed collection; callers filter client-side.
func CollectionsList(svc collections.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAllCollections(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

// CollectionCreate handles the collector form submission.
func CollectionCreate(svc collections.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body collections.CreateCollectionInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.AddCollection(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// CollectionUpdate merges the supplied fields into an existing record.
func CollectionUpdate(svc collections.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "collectionId")
		if id == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "collection id is required"))
			return
		}

		var body collections.UpdateCollectionInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.UpdateCollection(r.Context(), id, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

// CollectionDelete removes a record by id.
func CollectionDelete(svc collections.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "collectionId")
		if id == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "collection id is required"))
			return
		}

		if err := svc.DeleteCollection(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

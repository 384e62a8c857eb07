// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"pagewright/internal/pages"
)

// fieldValueResponse is one entry of the page's field listing: the raw
// stored value plus its display form and schema coordinates.
type fieldValueResponse struct {
	FieldID      uuid.UUID `json:"field_id"`
	GroupSlug    string    `json:"group_slug"`
	FieldSlug    string    `json:"field_slug"`
	FieldType    string    `json:"field_type"`
	Value        string    `json:"value"`
	FileURL      *string   `json:"file_url,omitempty"`
	DisplayValue string    `json:"display_value"`
}

// PageFields lists a page's field values with their display forms.
func (a *API) PageFields(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid page id"})
		return
	}

	details, err := a.svc.PageFields(id)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]fieldValueResponse, 0, len(details))
	for _, d := range details {
		out = append(out, fieldValueResponse{
			FieldID:      d.Field.ID,
			GroupSlug:    d.GroupSlug,
			FieldSlug:    d.Field.Slug,
			FieldType:    string(d.Field.Type),
			Value:        d.Value.Value,
			FileURL:      d.Value.FileURL,
			DisplayValue: d.Value.DisplayValue(&d.Field),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// setFieldRequest is the JSON body for writing one field value. Exactly
// one of value, file, or ref should be present, matching the field kind.
type setFieldRequest struct {
	Value *string `json:"value"`
	File  *struct {
		Name      string `json:"name"`
		SizeBytes int64  `json:"size_bytes"`
		URL       string `json:"url"`
	} `json:"file"`
	Ref *struct {
		Kind  string    `json:"kind"`
		ID    uuid.UUID `json:"id"`
		Label string    `json:"label"`
	} `json:"ref"`
}

// PageSetField validates and writes one field value for a page.
func (a *API) PageSetField(w http.ResponseWriter, r *http.Request) {
	pageID, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid page id"})
		return
	}
	fieldID, ok := urlUUID(r, "fieldID")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid field id"})
		return
	}
	var req setFieldRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
		return
	}

	in := pages.SetValueInput{Value: req.Value}
	if req.File != nil {
		in.File = &pages.FileUpload{
			Name:      req.File.Name,
			SizeBytes: req.File.SizeBytes,
			URL:       req.File.URL,
		}
	}
	if req.Ref != nil {
		in.Ref = &pages.RefInput{
			Kind:  req.Ref.Kind,
			ID:    req.Ref.ID,
			Label: req.Ref.Label,
		}
	}

	value, err := a.svc.SetFieldValue(pageID, fieldID, in)
	if err != nil {
		writeError(w, err)
		return
	}

	if page, err := a.svc.GetPage(pageID); err == nil {
		a.invalidate(r, page.Slug)
	}
	writeJSON(w, http.StatusOK, value)
}

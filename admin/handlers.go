// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package admin

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/stacklok/devlog/channel"
	"github.com/stacklok/devlog/httperr"
)

const maxBodySize = 1 << 16

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (s *Server) getVerbosity(w http.ResponseWriter, _ *http.Request) {
	v := s.logger.Verbosity()
	writeJSON(w, http.StatusOK, Verbosity{Verbosity: &v})
}

func (s *Server) putVerbosity(w http.ResponseWriter, r *http.Request) {
	var req Verbosity
	if err := decodeBody(w, r, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	old := s.logger.Verbosity()
	s.logger.SetVerbosity(*req.Verbosity)
	s.logger.Notef(r.Context(), "verbosity %d -> %d", old, *req.Verbosity)

	writeJSON(w, http.StatusOK, req)
}

func (s *Server) listChannels(w http.ResponseWriter, _ *http.Request) {
	all := s.logger.Registry().All()
	out := make([]Channel, 0, len(all))
	for _, ch := range all {
		out = append(out, s.describe(ch))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getChannel(w http.ResponseWriter, r *http.Request) {
	ch, err := s.channel(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.describe(ch))
}

func (s *Server) putOverride(w http.ResponseWriter, r *http.Request) {
	ch, err := s.channel(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	var req Override
	if err := decodeBody(w, r, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	s.logger.SetOverride(ch, *req.Enabled)
	s.logger.Notef(r.Context(), "override %s=%t", ch.Name(), *req.Enabled)

	writeJSON(w, http.StatusOK, s.describe(ch))
}

func (s *Server) deleteOverride(w http.ResponseWriter, r *http.Request) {
	ch, err := s.channel(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	s.logger.ClearOverride(ch)
	s.logger.Notef(r.Context(), "override %s cleared", ch.Name())

	w.WriteHeader(http.StatusNoContent)
}

// channel resolves the {name} URL parameter.
func (s *Server) channel(r *http.Request) (*channel.Channel, error) {
	name := chi.URLParam(r, "name")
	ch, err := s.logger.Registry().Resolve(name)
	if err != nil {
		return nil, httperr.NotFound(err)
	}
	return ch, nil
}

func (s *Server) describe(ch *channel.Channel) Channel {
	g := s.logger.Gate()
	d := g.Decide(ch)
	out := Channel{
		Name:      ch.Name(),
		Verbosity: ch.Verbosity(),
		Token:     ch.Token(s.logger.Composer().Unicode()),
		Enabled:   d.Enabled,
		Source:    d.Source.String(),
	}
	if enabled, ok := g.Overrides().Get(ch); ok {
		out.Override = &enabled
	}
	return out
}

// decodeBody reads a JSON body into v and validates it.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return httperr.BadRequest(fmt.Errorf("invalid request body: %w", err))
	}
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return httperr.BadRequest(fmt.Errorf("field %s failed %q validation", fe.Field(), fe.Tag()))
		}
		return httperr.BadRequest(err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

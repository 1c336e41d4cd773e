package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET  /v1/services, /v1/testimonials, /v1/store (200 OK)
// POST /v1/enquiries JSON {"name", "email", "phone", "message"} (202 Accepted, 400 Bad request)

type ContentHandler struct {
	content   port.ContentViewer
	enquiries port.EnquiryReceiver
}

func RegisterContent(
	mux *http.ServeMux,
	content port.ContentViewer,
	enquiries port.EnquiryReceiver,
) {
	h := ContentHandler{content, enquiries}
	mux.HandleFunc("GET /v1/services", h.GetServices)
	mux.HandleFunc("GET /v1/testimonials", h.GetTestimonials)
	mux.HandleFunc("GET /v1/store", h.GetStore)
	mux.HandleFunc("POST /v1/enquiries", h.PostEnquiry)
}

func (h ContentHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	const op = "ContentHandler.GetServices"
	log := slog.With("op", op)

	ss, err := h.content.Services(r.Context())
	if err != nil {
		http.Error(w, "failed to read services", http.StatusInternalServerError)
		log.Error("failed to read services", "err", err)
		return
	}

	out := make([]ServiceOffering, 0, len(ss))
	for _, s := range ss {
		out = append(out, ServiceOffering{
			ID:          s.ID,
			Icon:        s.Icon,
			Title:       s.Title,
			Description: s.Description,
			Price:       s.Price,
			Features:    s.Features,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h ContentHandler) GetTestimonials(w http.ResponseWriter, r *http.Request) {
	const op = "ContentHandler.GetTestimonials"
	log := slog.With("op", op)

	ts, err := h.content.Testimonials(r.Context())
	if err != nil {
		http.Error(w, "failed to read testimonials",
			http.StatusInternalServerError)
		log.Error("failed to read testimonials", "err", err)
		return
	}

	out := make([]Testimonial, 0, len(ts))
	for _, t := range ts {
		out = append(out, Testimonial{
			ID:     t.ID,
			Name:   t.Name,
			Role:   t.Role,
			Text:   t.Text,
			Rating: t.Rating,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h ContentHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	const op = "ContentHandler.GetStore"
	log := slog.With("op", op)

	info, err := h.content.Store(r.Context())
	if err != nil {
		http.Error(w, "failed to read store info",
			http.StatusInternalServerError)
		log.Error("failed to read store info", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, StoreInfo{
		Name:    info.Name,
		Address: info.Address,
		Phone:   info.Phone,
		Email:   info.Email,
		Hours:   info.Hours,
	})
}

func (h ContentHandler) PostEnquiry(w http.ResponseWriter, r *http.Request) {
	const op = "ContentHandler.PostEnquiry"
	log := slog.With("op", op)

	var req Enquiry
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	err := h.enquiries.SubmitEnquiry(r.Context(), domain.Enquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEnquiry) {
			http.Error(w, "name, email and message are required",
				http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to accept enquiry",
			http.StatusInternalServerError)
		log.Error("failed to accept enquiry", "err", err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
	if _, err := w.Write([]byte("Accepted")); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

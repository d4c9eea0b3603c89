package handlers_test

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reclamations endpoints", func() {
	var app *fiber.App

	BeforeEach(func() {
		app, _, _ = newTestApp()
	})

	createReclamation := func(payload map[string]any) map[string]any {
		resp, body := doJSON(app, http.MethodPost, "/api/reclamations/create", payload)
		Expect(resp.StatusCode).To(Equal(http.StatusCreated))
		return body["data"].(map[string]any)
	}

	createUser := func(name string) string {
		resp, body := doJSON(app, http.MethodPost, "/api/users", map[string]any{
			"name":     name,
			"email":    name + "@hotel.test",
			"password": "p1",
		})
		Expect(resp.StatusCode).To(Equal(http.StatusCreated))
		return body["data"].(map[string]any)["id"].(string)
	}

	Describe("POST /api/reclamations/create", func() {
		It("creates a reclamation with default open status", func() {
			data := createReclamation(map[string]any{"subject": "noise", "roomNumber": "204"})
			Expect(data["id"]).To(MatchRegexp(`^[0-9a-f]{24}$`))
			Expect(data["status"]).To(Equal("open"))
			Expect(data["referenceKey"]).To(MatchRegexp(`^REC-[0-9A-F]{8}$`))
		})

		It("rejects a payload without a subject", func() {
			resp, _ := doJSON(app, http.MethodPost, "/api/reclamations/create", map[string]any{"description": "?"})
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PUT /api/reclamations/:id/status", func() {
		It("resolves a staff name to that user's identifier", func() {
			aliceID := createUser("Alice")
			reclamation := createReclamation(map[string]any{"subject": "noise"})

			resp, body := doJSON(app, http.MethodPut, "/api/reclamations/"+reclamation["id"].(string)+"/status", map[string]any{
				"status":     "in_progress",
				"assignedTo": "Alice",
			})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			data := body["data"].(map[string]any)
			Expect(data["status"]).To(Equal("in_progress"))
			Expect(data["assignedTo"]).To(Equal(aliceID))
		})

		It("passes an identifier-shaped assignee through unchanged", func() {
			aliceID := createUser("Alice")
			reclamation := createReclamation(map[string]any{"subject": "leak"})

			resp, body := doJSON(app, http.MethodPut, "/api/reclamations/"+reclamation["id"].(string)+"/status", map[string]any{
				"status":     "in_progress",
				"assignedTo": aliceID,
			})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(body["data"].(map[string]any)["assignedTo"]).To(Equal(aliceID))
		})

		It("returns 404 when the named assignee does not exist", func() {
			reclamation := createReclamation(map[string]any{"subject": "noise"})

			resp, body := doJSON(app, http.MethodPut, "/api/reclamations/"+reclamation["id"].(string)+"/status", map[string]any{
				"status":     "in_progress",
				"assignedTo": "Mallory",
			})
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
			errObj := body["error"].(map[string]any)
			Expect(errObj["message"]).To(Equal("assigned user not found"))

			listResp, listBody := doJSON(app, http.MethodGet, "/api/reclamations/", nil)
			Expect(listResp.StatusCode).To(Equal(http.StatusOK))
			items := listBody["data"].([]any)
			Expect(items).To(HaveLen(1))
			stored := items[0].(map[string]any)
			Expect(stored["status"]).To(Equal("open"))
			Expect(stored).ToNot(HaveKey("assignedTo"))
		})

		It("returns 404 for a missing reclamation", func() {
			resp, _ := doJSON(app, http.MethodPut, "/api/reclamations/aaaaaaaaaaaaaaaaaaaaaaaa/status", map[string]any{
				"status": "in_progress",
			})
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("returns 400 for a malformed reclamation identifier", func() {
			resp, _ := doJSON(app, http.MethodPut, "/api/reclamations/not-an-id/status", map[string]any{
				"status": "in_progress",
			})
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("requires a status", func() {
			reclamation := createReclamation(map[string]any{"subject": "noise"})
			resp, _ := doJSON(app, http.MethodPut, "/api/reclamations/"+reclamation["id"].(string)+"/status", map[string]any{
				"assignedTo": "Alice",
			})
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PUT /api/reclamations/update/:id", func() {
		It("merges submitted fields and returns the updated record", func() {
			reclamation := createReclamation(map[string]any{"subject": "noise"})

			resp, body := doJSON(app, http.MethodPut, "/api/reclamations/update/"+reclamation["id"].(string), map[string]any{
				"category":  "maintenance",
				"guestName": "M. Dupont",
			})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			data := body["data"].(map[string]any)
			Expect(data["category"]).To(Equal("maintenance"))
			Expect(data["guestName"]).To(Equal("M. Dupont"))
			Expect(data["subject"]).To(Equal("noise"))
		})

		It("returns 404 for an unknown identifier", func() {
			resp, _ := doJSON(app, http.MethodPut, "/api/reclamations/update/aaaaaaaaaaaaaaaaaaaaaaaa", map[string]any{
				"category": "maintenance",
			})
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DELETE /api/reclamations/:id", func() {
		It("confirms deletion even when nothing matched", func() {
			resp, body := doJSON(app, http.MethodDelete, "/api/reclamations/aaaaaaaaaaaaaaaaaaaaaaaa", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(body["data"].(map[string]any)["message"]).To(Equal("reclamation deleted"))
		})
	})

	Describe("end to end", func() {
		It("assigns Alice's identifier when her name is submitted with a status change", func() {
			aliceID := createUser("Alice")
			reclamation := createReclamation(map[string]any{"subject": "noise"})

			resp, body := doJSON(app, http.MethodPut, "/api/reclamations/"+reclamation["id"].(string)+"/status", map[string]any{
				"status":     "in_progress",
				"assignedTo": "Alice",
			})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			data := body["data"].(map[string]any)
			Expect(data["assignedTo"]).To(Equal(aliceID))
			Expect(data["status"]).To(Equal("in_progress"))

			listResp, listBody := doJSON(app, http.MethodGet, "/api/reclamations/", nil)
			Expect(listResp.StatusCode).To(Equal(http.StatusOK))
			items := listBody["data"].([]any)
			Expect(items).To(HaveLen(1))
			Expect(items[0].(map[string]any)["assignedTo"]).To(Equal(aliceID))
		})
	})
})

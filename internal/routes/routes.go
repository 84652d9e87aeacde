package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gitlab.com/contactbook/contacts-api/internal/model"
	"gitlab.com/contactbook/contacts-api/internal/repository"
	"gitlab.com/contactbook/contacts-api/internal/service"
)

// handler carries the dependencies of the HTTP endpoints.
type handler struct {
	svc *service.Service
	log *zap.Logger
}

// SetupHttpRouter initializes the REST API router and registers all
// endpoints. With requestLogging set to false, gin's per-request logger is
// omitted and only the recovery middleware stays active.
func SetupHttpRouter(svc *service.Service, log *zap.Logger, requestLogging bool) *gin.Engine {
	var router *gin.Engine
	if requestLogging {
		router = gin.Default()
	} else {
		router = gin.New()
		router.Use(gin.Recovery())
	}
	h := &handler{svc: svc, log: log}
	router.GET("/contacts", h.findContacts)
	router.POST("/contacts", h.createContact)
	router.GET("/contacts/search", h.searchContacts)
	router.GET("/contacts/birthdays", h.upcomingBirthdays)
	router.GET("/contacts/:id", h.findContactByID)
	router.PUT("/contacts/:id", h.updateContactByID)
	router.DELETE("/contacts/:id", h.deleteContactByID)
	return router
}

// findContacts responds with one page of contacts as JSON.
//
// The URL parameter 'limit' specifies how many contacts are returned and must
// lie within [10, 100]; it defaults to 10. The URL parameter 'offset'
// specifies how many contacts are skipped in the beginning and defaults to 0.
//
// REST API calls:
//
//	> curl "http://localhost:8080/contacts"
//	> curl "http://localhost:8080/contacts?limit=20&offset=60"
func (h *handler) findContacts(c *gin.Context) {
	limit, offset, ok := parseLimitAndOffset(c)
	if !ok {
		return
	}
	contacts, err := h.svc.List(limit, offset)
	if err != nil {
		h.log.Error("unable to list contacts", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}
	h.log.Info("retrieved contacts", zap.Int("count", len(contacts)))
	c.IndentedJSON(http.StatusOK, contacts)
}

// parseLimitAndOffset inspects the URL parameters and determines values for
// limit and offset of the result set.
func parseLimitAndOffset(c *gin.Context) (limit int, offset int, ok bool) {
	limit = 10
	if s := c.Query("limit"); s != "" {
		value, err := strconv.Atoi(s)
		if err != nil || value < 10 || value > 100 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid limit parameter"})
			return 0, 0, false
		}
		limit = value
	}
	offset = 0
	if s := c.Query("offset"); s != "" {
		value, err := strconv.Atoi(s)
		if err != nil || value < 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid offset parameter"})
			return 0, 0, false
		}
		offset = value
	}
	return limit, offset, true
}

// parseID inspects the id path parameter. A value that is not numeric cannot
// name a contact, so the request is answered with NOT FOUND.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "invalid id parameter"})
		return 0, false
	}
	return id, true
}

// findContactByID locates the contact whose ID value matches the id parameter
// of the request URL, then returns that contact as a response.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/56
func (h *handler) findContactByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	contact, err := h.svc.GetByID(id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
	case err != nil:
		h.log.Error("unable to fetch contact", zap.Int64("id", id), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	default:
		c.IndentedJSON(http.StatusOK, contact)
	}
}

// createContact inserts the contact specified in the request's JSON into the
// database. It responds with the full contact data including the newly
// assigned id. All fields except extra_info are required; a duplicate email
// or phone is refused by the database and reported as an internal error
// together with the underlying message.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts --request "POST" --include --header "Content-Type: application/json" --data '{"first_name": "Hans", "last_name": "Wurst", "email": "hans@example.com", "phone": "0815", "birthday": "1969-03-02T00:00:00Z"}'
func (h *handler) createContact(c *gin.Context) {
	var input model.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	contact, err := h.svc.Create(input)
	if err != nil {
		h.log.Error("unable to create contact", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	h.log.Info("created contact", zap.Int64("id", contact.Id))
	c.IndentedJSON(http.StatusCreated, contact)
}

// updateContactByID updates the contact whose ID value matches the id
// parameter of the request URL, applies the values specified in the JSON
// (and only those), and finally responds with the new version of the
// contact. A body without any fields leaves the contact unchanged.
//
// Example REST API calls:
//
//	> curl http://localhost:8080/contacts/56 --request "PUT" --include --header "Content-Type: application/json" --data '{"phone": "81970"}'
//	> curl http://localhost:8080/contacts/56 --request "PUT" --include --header "Content-Type: application/json" --data '{"birthday": "1972-06-06T00:00:00Z"}'
func (h *handler) updateContactByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch model.ContactPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	contact, err := h.svc.Update(id, patch)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		h.log.Warn("contact not found for update", zap.Int64("id", id))
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
	case err != nil:
		h.log.Error("unable to update contact", zap.Int64("id", id), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	default:
		h.log.Info("updated contact", zap.Int64("id", id))
		c.IndentedJSON(http.StatusOK, contact)
	}
}

// deleteContactByID deletes the contact whose ID value matches the id
// parameter of the request URL from the database. Deleting an id that does
// not exist is tolerated; the response is NO CONTENT either way.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/56 --request "DELETE"
func (h *handler) deleteContactByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	_, err := h.svc.Delete(id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.Status(http.StatusNoContent)
	case err != nil:
		h.log.Error("unable to delete contact", zap.Int64("id", id), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	default:
		h.log.Info("deleted contact", zap.Int64("id", id))
		c.Status(http.StatusNoContent)
	}
}

// searchContacts responds with all contacts matching the URL parameters
// 'first_name', 'last_name', and 'email'. Each supplied parameter matches as
// a case-insensitive substring; the parameters are combined with AND. An
// empty result is answered with NOT FOUND.
//
// REST API calls:
//
//	> curl "http://localhost:8080/contacts/search?last_name=smi"
//	> curl "http://localhost:8080/contacts/search?first_name=ali&email=example.com"
func (h *handler) searchContacts(c *gin.Context) {
	firstName := c.Query("first_name")
	lastName := c.Query("last_name")
	email := c.Query("email")
	contacts, err := h.svc.Search(firstName, lastName, email)
	if err != nil {
		h.log.Error("unable to search contacts", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}
	if len(contacts) == 0 {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "no contacts found"})
		return
	}
	h.log.Info("found contacts by search parameters", zap.Int("count", len(contacts)))
	c.IndentedJSON(http.StatusOK, contacts)
}

// upcomingBirthdays responds with all contacts whose birthday's day of month
// lies within the window starting today. The URL parameter 'days' sets the
// window length, must be at least 1, and defaults to 7.
//
// Example REST API call:
//
//	> curl "http://localhost:8080/contacts/birthdays?days=14"
func (h *handler) upcomingBirthdays(c *gin.Context) {
	days := 7
	if s := c.Query("days"); s != "" {
		value, err := strconv.Atoi(s)
		if err != nil || value < 1 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid days parameter"})
			return
		}
		days = value
	}
	contacts, err := h.svc.UpcomingBirthdays(days)
	if err != nil {
		h.log.Error("unable to query upcoming birthdays", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}
	h.log.Info("found contacts with upcoming birthdays", zap.Int("count", len(contacts)))
	c.IndentedJSON(http.StatusOK, contacts)
}

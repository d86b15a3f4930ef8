package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamPage     = "page"
	RequestParamLimit    = "limit"
	RequestParamSearch   = "search"
	RequestParamCategory = "category"
	RequestParamRegion   = "region"
	RequestParamInterest = "interest"
	RequestParamOfferID  = "offerId"
	RequestParamPath     = "path"

	RequestParamItineraryID   = "itineraryId"
	RequestParamDestination   = "destination"
	RequestParamDays          = "days"
	RequestParamMeal          = "meal"
	RequestParamTransport     = "transport"
	RequestParamAccommodation = "accommodation"
)

const (
	RequestParamID = "id"
)

const (
	DefaultValuePage     = 1
	DefaultValueLimit    = 10
	DefaultValueCategory = "all"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = "2006-01-02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderContentDisposition = "Content-Disposition"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypePDF  = "application/pdf"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorNotFound             = "PAGE NOT FOUND"
	ResponseErrorValidation           = "validation failed"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)

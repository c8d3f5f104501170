package design

import (
	. "goa.design/goa/v3/dsl"
)

var _ = API("brightbooks", func() {
	Title("Brightbooks API")
	Description("Lead capture and marketing content API for the Brightbooks accounting firm website")
	Version("1.0.0")
	Server("api", func() {
		Host("localhost", func() {
			URI("http://localhost:8000")
		})
	})
})

// Common error types
var ErrorBody = Type("ErrorBody", func() {
	Description("Error envelope returned by every failing endpoint")
	Attribute("success", Boolean, "Always false", func() {
		Example(false)
	})
	Attribute("error", String, "User-facing error message", func() {
		Example("Too many submission attempts. Please try again later.")
	})
	Attribute("requestId", String, "Request identifier echoed from X-Request-ID")
	Required("success", "error")
})

// Health check
var _ = Service("health", func() {
	Description("Health check service")
	Error("unavailable", ErrorBody)
	Method("check", func() {
		Result(HealthResult)
		Error("unavailable")
		HTTP(func() {
			GET("/health")
			Response(StatusOK)
			Response("unavailable", StatusServiceUnavailable)
		})
	})
})

var HealthResult = ResultType("HealthResult", func() {
	Attribute("status", String, "Service status", func() {
		Enum("healthy", "degraded")
		Example("healthy")
	})
	Attribute("service", String, "Service name", func() {
		Example("Brightbooks API")
	})
	Attribute("version", String, "Service version", func() {
		Example("1.0.0")
	})
	Attribute("database", String, "Database status", func() {
		Enum("ok", "unavailable")
	})
	Required("status", "service", "version", "database")
})

// Lead capture services share the same error responses
func leadErrors() {
	Error("bad_request", ErrorBody)
	Error("rate_limited", ErrorBody)
	Error("unavailable", ErrorBody)
}

func leadResponses() {
	Response(StatusOK)
	Response("bad_request", StatusBadRequest)
	Response("rate_limited", StatusTooManyRequests)
	Response("unavailable", StatusServiceUnavailable)
}

var _ = Service("contact", func() {
	Description("Contact form service")
	leadErrors()

	Method("submit", func() {
		Description("Submit contact form")
		Payload(ContactPayload)
		Result(MessageResult)
		HTTP(func() {
			POST("/api/v1/contact")
			leadResponses()
		})
	})
})

var _ = Service("newsletter", func() {
	Description("Newsletter subscription service")
	leadErrors()

	Method("subscribe", func() {
		Description("Subscribe an email address; repeated subscriptions succeed")
		Payload(NewsletterPayload)
		Result(MessageResult)
		HTTP(func() {
			POST("/api/v1/newsletter")
			leadResponses()
		})
	})
})

var _ = Service("waitlist", func() {
	Description("Product waitlist service")
	leadErrors()

	Method("join", func() {
		Description("Join the product waitlist")
		Payload(WaitlistPayload)
		Result(FormResult)
		HTTP(func() {
			POST("/api/v1/waitlist")
			leadResponses()
		})
	})
})

var _ = Service("service_requests", func() {
	Description("Solution service request intake")
	leadErrors()

	Method("submit", func() {
		Description("Request a consultation for a solution")
		Payload(ServiceRequestPayload)
		Result(FormResult)
		HTTP(func() {
			POST("/api/v1/service-requests")
			leadResponses()
		})
	})
})

var _ = Service("technical_inquiries", func() {
	Description("Technical accounting inquiry intake")
	leadErrors()

	Method("submit", func() {
		Description("Submit a technical accounting question")
		Payload(TechnicalInquiryPayload)
		Result(FormResult)
		HTTP(func() {
			POST("/api/v1/technical-inquiries")
			leadResponses()
		})
	})
})

// Content reads
var _ = Service("content", func() {
	Description("Published marketing content")
	Error("not_found", ErrorBody)
	Error("bad_request", ErrorBody)
	Error("unavailable", ErrorBody)

	Method("list_solutions", func() {
		Result(ArrayOf(SolutionResult))
		HTTP(func() {
			GET("/api/v1/solutions")
			Response(StatusOK)
			Response("unavailable", StatusServiceUnavailable)
		})
	})

	Method("get_solution", func() {
		Payload(SlugPayload)
		Result(SolutionResult)
		HTTP(func() {
			GET("/api/v1/solutions/{slug}")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
			Response("unavailable", StatusServiceUnavailable)
		})
	})

	Method("list_insights", func() {
		Payload(ListInsightsPayload)
		Result(ArrayOf(InsightResult))
		HTTP(func() {
			GET("/api/v1/insights")
			Param("limit")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
			Response("unavailable", StatusServiceUnavailable)
		})
	})

	Method("get_insight", func() {
		Payload(SlugPayload)
		Result(InsightResult)
		HTTP(func() {
			GET("/api/v1/insights/{slug}")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
			Response("unavailable", StatusServiceUnavailable)
		})
	})

	Method("get_policy", func() {
		Payload(SlugPayload)
		Result(PolicyResult)
		HTTP(func() {
			GET("/api/v1/policies/{slug}")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
			Response("unavailable", StatusServiceUnavailable)
		})
	})
})

// Downloadable templates
var _ = Service("templates", func() {
	Description("Downloadable template catalogue and gated downloads")
	leadErrors()
	Error("not_found", ErrorBody)

	Method("list", func() {
		Result(ArrayOf(TemplateResult))
		HTTP(func() {
			GET("/api/v1/templates")
			Response(StatusOK)
			Response("unavailable", StatusServiceUnavailable)
		})
	})

	Method("get", func() {
		Payload(SlugPayload)
		Result(TemplateResult)
		HTTP(func() {
			GET("/api/v1/templates/{slug}")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
			Response("unavailable", StatusServiceUnavailable)
		})
	})

	Method("request_download", func() {
		Description("Record a waitlist lead and return a signed download link")
		Payload(DownloadRequestPayload)
		Result(FormResult)
		HTTP(func() {
			POST("/api/v1/templates/{slug}/download-request")
			leadResponses()
			Response("not_found", StatusNotFound)
		})
	})

	Method("download", func() {
		Description("Redirect to the template file when the token is valid")
		Payload(DownloadPayload)
		HTTP(func() {
			GET("/api/v1/templates/{slug}/download")
			Param("token")
			Response(StatusFound, func() {
				Header("location:Location")
			})
			Response("bad_request", StatusBadRequest)
		})
	})
})

// Lead payloads and results
var ContactPayload = Type("ContactPayload", func() {
	Attribute("firstName", String, "First name", func() {
		Example("Ada")
	})
	Attribute("lastName", String, "Last name")
	Attribute("email", String, "Email address", func() {
		Format(FormatEmail)
	})
	Attribute("company", String, "Company name")
	Attribute("subject", String, "Subject")
	Attribute("message", String, "Message body")
	Attribute("privacyConsent", Boolean, "Privacy policy consent; must be the boolean true")
	Attribute("honeypot", String, "Hidden field, must be empty")
	Required("firstName", "lastName", "email", "message", "privacyConsent")
})

var NewsletterPayload = Type("NewsletterPayload", func() {
	Attribute("email", String, "Email address", func() {
		Format(FormatEmail)
	})
	Attribute("source", String, "Signup location", func() {
		Example("footer")
	})
	Attribute("honeypot", String, "Hidden field, must be empty")
	Required("email")
})

var WaitlistPayload = Type("WaitlistPayload", func() {
	Attribute("firstName", String, "First name")
	Attribute("lastName", String, "Last name")
	Attribute("email", String, "Email address", func() {
		Format(FormatEmail)
	})
	Attribute("company", String, "Company name")
	Attribute("phone", String, "Phone number")
	Attribute("message", String, "Optional note")
	Attribute("source", String, "Known signup source; unknown values become waitlist", func() {
		Enum("waitlist", "homepage", "pricing", "solutions", "insights")
	})
	Attribute("honeypot", String, "Hidden field, must be empty")
	Required("firstName", "lastName", "email")
})

var ServiceRequestPayload = Type("ServiceRequestPayload", func() {
	Attribute("solutionId", String, "Solution slug", func() {
		Example("bookkeeping")
	})
	Attribute("fullName", String, "Full name")
	Attribute("email", String, "Email address", func() {
		Format(FormatEmail)
	})
	Attribute("company", String, "Company name")
	Attribute("phone", String, "Phone number")
	Attribute("message", String, "Optional message")
	Attribute("honeypot", String, "Hidden field, must be empty")
	Required("solutionId", "fullName", "email")
})

var TechnicalInquiryPayload = Type("TechnicalInquiryPayload", func() {
	Attribute("title", String, "Salutation")
	Attribute("firstName", String, "First name")
	Attribute("lastName", String, "Last name")
	Attribute("email", String, "Email address", func() {
		Format(FormatEmail)
	})
	Attribute("phone", String, "Phone number")
	Attribute("company", String, "Company name")
	Attribute("jobTitle", String, "Job title")
	Attribute("subject", String, "Inquiry subject")
	Attribute("subcategory", String, "Inquiry subcategory")
	Attribute("background", String, "Background of the question")
	Attribute("question", String, "The question")
	Attribute("additionalInfo", String, "Additional information")
	Attribute("privacyConsent", Boolean, "Privacy policy consent")
	Attribute("termsConsent", Boolean, "Terms of service consent")
	Attribute("honeypot", String, "Hidden field, must be empty")
	Required("firstName", "lastName", "email", "subject", "background", "privacyConsent", "termsConsent")
})

var DownloadRequestPayload = Type("DownloadRequestPayload", func() {
	Extend(WaitlistPayload)
	Attribute("slug", String, "Template slug")
	Required("slug")
})

var DownloadPayload = Type("DownloadPayload", func() {
	Attribute("slug", String, "Template slug")
	Attribute("token", String, "Signed download token")
	Required("slug", "token")
})

var SlugPayload = Type("SlugPayload", func() {
	Attribute("slug", String, "Resource slug", func() {
		Example("bookkeeping")
	})
	Required("slug")
})

var ListInsightsPayload = Type("ListInsightsPayload", func() {
	Attribute("limit", Int, "Maximum number of insights", func() {
		Minimum(1)
		Maximum(50)
		Default(12)
	})
})

var MessageResult = ResultType("MessageResult", func() {
	Attribute("success", Boolean, "Whether the submission was accepted")
	Attribute("message", String, "User-facing message", func() {
		Example("Thank you for contacting us! We'll get back to you within 24 hours.")
	})
	Required("success", "message")
})

var FormResult = ResultType("FormResult", func() {
	Attribute("success", Boolean, "Whether the submission was accepted")
	Attribute("message", String, "User-facing message")
	Attribute("error", String, "User-facing error message")
	Attribute("data", Any, "Form-specific data such as a reference id or download link")
	Required("success")
})

// Content results
var SolutionResult = ResultType("SolutionResult", func() {
	Attribute("slug", String, "Solution slug")
	Attribute("title", String, "Title")
	Attribute("summary", String, "Summary")
	Attribute("body", String, "Body")
	Attribute("category", String, "Category")
	Attribute("sort_order", Int, "Display order")
	Attribute("published_at", String, "Publication time", func() {
		Format(FormatDateTime)
	})
	Required("slug", "title")
})

var InsightResult = ResultType("InsightResult", func() {
	Attribute("slug", String, "Insight slug")
	Attribute("title", String, "Title")
	Attribute("excerpt", String, "Excerpt")
	Attribute("body", String, "Body")
	Attribute("author", String, "Author")
	Attribute("published_at", String, "Publication time", func() {
		Format(FormatDateTime)
	})
	Required("slug", "title")
})

var TemplateResult = ResultType("TemplateResult", func() {
	Attribute("slug", String, "Template slug")
	Attribute("title", String, "Title")
	Attribute("description", String, "Description")
	Attribute("preview_url", String, "Preview image URL")
	Attribute("sort_order", Int, "Display order")
	Required("slug", "title")
})

var PolicyResult = ResultType("PolicyResult", func() {
	Attribute("slug", String, "Policy slug")
	Attribute("title", String, "Title")
	Attribute("body", String, "Body")
	Attribute("updated_at", String, "Last update", func() {
		Format(FormatDateTime)
	})
	Required("slug", "title", "body")
})

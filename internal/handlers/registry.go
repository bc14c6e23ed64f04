package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	ConsultationHandler *ConsultationHandler
	TestimonialHandler  *TestimonialHandler
}

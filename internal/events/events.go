package events

// Topic names one of the site's interaction events. Components subscribe to
// topics instead of attaching ad hoc listeners all over initialization.
type Topic string

const (
	TopicMenuToggle     Topic = "menu-toggle"
	TopicCategoryChange Topic = "category-change"
	TopicFilterChange   Topic = "filter-change"
	TopicFormSubmit     Topic = "form-submit"
	TopicFieldEdit      Topic = "field-edit"
	TopicCarouselHover  Topic = "carousel-hover"
	TopicScroll         Topic = "scroll"
	TopicResize         Topic = "resize"
)

// Event is a routed occurrence. Payload type depends on the topic and is
// asserted by the subscriber.
type Event struct {
	Topic   Topic
	Payload any
}

// Handler consumes events on the router's dispatch goroutine. Handlers must
// not block; slow work belongs on a timer.
type Handler func(Event)

package models

// Raw rows as stored by the hosted database. Text columns are nullable and
// mirror what was typed into the booking spreadsheets, so every field except
// the primary key is a pointer.

// Flight is a row of public.flights
type Flight struct {
	ID                 int64   `json:"id" db:"id" yaml:"id" validate:"gt=0"`
	DepartureCity      *string `json:"departure_city" db:"departure_city" yaml:"departure_city"`
	ArrivalCity        *string `json:"arrival_city" db:"arrival_city" yaml:"arrival_city"`
	FlightPhotoURL     *string `json:"flight_photo_url" db:"flight_photo_url" yaml:"flight_photo_url"`
	DepartureTimeLocal *string `json:"departure_time_local" db:"departure_time_local" yaml:"departure_time_local"`
	DepartureTimeUTC   *string `json:"departure_time_utc" db:"departure_time_utc" yaml:"departure_time_utc"`
	ArrivalTimeLocal   *string `json:"arrival_time_local" db:"arrival_time_local" yaml:"arrival_time_local"`
	ArrivalTimeUTC     *string `json:"arrival_time_utc" db:"arrival_time_utc" yaml:"arrival_time_utc"`
	FlightNumber       *string `json:"flight_number" db:"flight_number" yaml:"flight_number"`
	Passengers         *string `json:"passengers" db:"passengers" yaml:"passengers"` // e.g. "SJ,LJ,KJ"
	PassengerCount     *string `json:"passenger_count" db:"passenger_count" yaml:"passenger_count"`
	BookingReference   *string `json:"booking_reference" db:"booking_reference" yaml:"booking_reference"`
}

// Transfer is a row of public.transfers
type Transfer struct {
	ID                 int64   `json:"id" db:"id" yaml:"id" validate:"gt=0"`
	TransferName       *string `json:"transfer_name" db:"transfer_name" yaml:"transfer_name"`
	TransferPhotoURL   *string `json:"transfer_photo_url" db:"transfer_photo_url" yaml:"transfer_photo_url"`
	TransportMethod    *string `json:"transport_method" db:"transport_method" yaml:"transport_method"`
	DepartureLocation  *string `json:"departure_location" db:"departure_location" yaml:"departure_location"`
	ArrivalLocation    *string `json:"arrival_location" db:"arrival_location" yaml:"arrival_location"`
	DepartureTimeLocal *string `json:"departure_time_local" db:"departure_time_local" yaml:"departure_time_local"`
	ArrivalTimeLocal   *string `json:"arrival_time_local" db:"arrival_time_local" yaml:"arrival_time_local"`
	DepartureTimeUTC   *string `json:"departure_time_utc" db:"departure_time_utc" yaml:"departure_time_utc"`
	ArrivalTimeUTC     *string `json:"arrival_time_utc" db:"arrival_time_utc" yaml:"arrival_time_utc"`
	Participants       *string `json:"participants" db:"participants" yaml:"participants"`
	ParticipantCount   *string `json:"participant_count" db:"participant_count" yaml:"participant_count"`
	BookingReference   *string `json:"booking_reference" db:"booking_reference" yaml:"booking_reference"`
	Operator           *string `json:"operator" db:"operator" yaml:"operator"`
}

// TransportTicket is a row of public.transport_tickets (one per passenger)
type TransportTicket struct {
	ID               int64   `json:"id" db:"id" yaml:"id" validate:"gt=0"`
	BookingReference *string `json:"booking_reference" db:"booking_reference" yaml:"booking_reference"`
	Passenger        *string `json:"passenger" db:"passenger" yaml:"passenger"`
	TicketNumber     *string `json:"ticket_number" db:"ticket_number" yaml:"ticket_number"`
	TransferName     *string `json:"transfer_name" db:"transfer_name" yaml:"transfer_name"`
}

// CarHire is a row of public.car_hires. Several rows booked together share
// pickup/dropoff location and time.
type CarHire struct {
	ID               int64   `json:"id" db:"id" yaml:"id" validate:"gt=0"`
	CarPhotoURL      *string `json:"car_photo_url" db:"car_photo_url" yaml:"car_photo_url"`
	PickupLocation   *string `json:"pickup_location" db:"pickup_location" yaml:"pickup_location"`
	DropoffLocation  *string `json:"dropoff_location" db:"dropoff_location" yaml:"dropoff_location"`
	CityName         *string `json:"city_name" db:"city_name" yaml:"city_name"`
	PickupTimeLocal  *string `json:"pickup_time_local" db:"pickup_time_local" yaml:"pickup_time_local"`
	PickupTimeUTC    *string `json:"pickup_time_utc" db:"pickup_time_utc" yaml:"pickup_time_utc"`
	DropoffTimeLocal *string `json:"dropoff_time_local" db:"dropoff_time_local" yaml:"dropoff_time_local"`
	DropoffTimeUTC   *string `json:"dropoff_time_utc" db:"dropoff_time_utc" yaml:"dropoff_time_utc"`
	Driver           *string `json:"driver" db:"driver" yaml:"driver"`
	Passengers       *string `json:"passengers" db:"passengers" yaml:"passengers"`
	BookingReference *string `json:"booking_reference" db:"booking_reference" yaml:"booking_reference"`
}

// Accommodation is a row of public.accomodation
type Accommodation struct {
	ID                           int64   `json:"id" db:"id" yaml:"id" validate:"gt=0"`
	AccommodationName            *string `json:"accommodation_name" db:"accommodation_name" yaml:"accommodation_name"`
	HotelCity                    *string `json:"hotel_city" db:"hotel_city" yaml:"hotel_city"`
	HotelName                    *string `json:"hotel_name" db:"hotel_name" yaml:"hotel_name"`
	HotelPhotoURL                *string `json:"hotel_photo_url" db:"hotel_photo_url" yaml:"hotel_photo_url"`
	HotelAddress                 *string `json:"hotel_address" db:"hotel_address" yaml:"hotel_address"`
	DateCheckInLocal             *string `json:"date_check_in_local" db:"date_check_in_local" yaml:"date_check_in_local"`
	DateCheckInUTC               *string `json:"date_check_in_utc" db:"date_check_in_utc" yaml:"date_check_in_utc"`
	DateCheckOut                 *string `json:"date_check_out" db:"date_check_out" yaml:"date_check_out"`
	DateCheckOutUTC              *string `json:"date_check_out_utc" db:"date_check_out_utc" yaml:"date_check_out_utc"`
	Participants                 *string `json:"participants" db:"participants" yaml:"participants"`
	ParticipantCount             *string `json:"participant_count" db:"participant_count" yaml:"participant_count"`
	BookingReference             *string `json:"booking_reference" db:"booking_reference" yaml:"booking_reference"`
	BreakfastIncluded            *string `json:"breakfast_included" db:"breakfast_included" yaml:"breakfast_included"` // "Y" or NULL
	AdditionalFeaturesGym        *bool   `json:"additional_features_gym" db:"additional_features_gym" yaml:"additional_features_gym"`
	AdditionalFeaturesCafe       *bool   `json:"additional_features_cafe" db:"additional_features_cafe" yaml:"additional_features_cafe"`
	AdditionalFeaturesRestaurant *bool   `json:"additional_features_restaurant" db:"additional_features_restaurant" yaml:"additional_features_restaurant"`
	AdditionalFeaturesShopping   *bool   `json:"additional_features_shopping" db:"additional_features_shopping" yaml:"additional_features_shopping"`
	AdditionalFeaturesSavoury    *bool   `json:"additional_features_food_savoury" db:"additional_features_food_savoury" yaml:"additional_features_food_savoury"`
	AdditionalFeaturesSweet      *bool   `json:"additional_features_food_sweet" db:"additional_features_food_sweet" yaml:"additional_features_food_sweet"`
}

// RoomConfiguration is a row of public.room_configuration, linked to an
// accommodation by accommodation_name only.
type RoomConfiguration struct {
	ID                int64   `json:"id" db:"id" yaml:"id" validate:"gt=0"`
	AccommodationName *string `json:"accommodation_name" db:"accommodation_name" yaml:"accommodation_name"`
	RoomType          *string `json:"room_type" db:"room_type" yaml:"room_type"`
	Participants      *string `json:"participants" db:"participants" yaml:"participants"`
	ParticipantCount  *string `json:"participant_count" db:"participant_count" yaml:"participant_count"`
	BookingReference  *string `json:"booking_reference" db:"booking_reference" yaml:"booking_reference"`
}

// Activity is a row of public.activities
type Activity struct {
	ID                int64   `json:"id" db:"id" yaml:"id" validate:"gt=0"`
	ActivityName      *string `json:"activity_name" db:"activity_name" yaml:"activity_name"`
	ActivityPhotoURL  *string `json:"activity_photo_url" db:"activity_photo_url" yaml:"activity_photo_url"`
	AdditionalDetails *string `json:"additional_details" db:"additional_details" yaml:"additional_details"`
	BookingReference  *string `json:"booking_reference" db:"booking_reference" yaml:"booking_reference"`
	City              *string `json:"city" db:"city" yaml:"city"`
	StartTimeLocal    *string `json:"start_time_local" db:"start_time_local" yaml:"start_time_local"`
	StartTimeUTC      *string `json:"start_time_utc" db:"start_time_utc" yaml:"start_time_utc"`
	EndTimeLocal      *string `json:"end_time_local" db:"end_time_local" yaml:"end_time_local"`
	EndTimeUTC        *string `json:"end_time_utc" db:"end_time_utc" yaml:"end_time_utc"`
	Participants      *string `json:"participants" db:"participants" yaml:"participants"`
	ParticipantCount  *string `json:"participant_count" db:"participant_count" yaml:"participant_count"`
	Location          *string `json:"location" db:"location" yaml:"location"`
}

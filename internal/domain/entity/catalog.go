package entity

// Catálogos fijos del estudio. La UI solo ofrece estos valores; el motor no
// valida contra ellos (la validación de formularios es responsabilidad de la UI).

// EventTypes tipos de evento que ofrece el estudio.
var EventTypes = []string{
	"Wedding shoot",
	"Pre-wedding shoot",
	"Haldi shoot",
	"Engagement shoot",
	"Baby shower shoot",
	"Portraits shoot",
	"Car delivery shoot",
	"Event shoot",
	"Birthday shoot",
	"Maternity shoot",
	"Portrait shoot",
	"Name Ceremony",
	"Baby Shoot",
	"Annual Function shoot",
	"Annual spots Shoot",
}

// ServiceNames servicios contratables dentro de un evento.
var ServiceNames = []string{
	"Traditional Photo",
	"Traditional Video",
	"Photo's",
	"Video's",
	"Video Edit",
	"Photo Edit",
	"Reel",
	"Drone Shoot",
	"Cinematic Shot",
	"Album",
	"Travelling Charges",
	"Pendrive Charges",
}

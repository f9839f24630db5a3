package config

const (
	// DefaultGenres is the comma-separated default genre registry
	DefaultGenres = "Фантастика,Ужасы,Детективы,Мультфильмы,Комедии"

	// DefaultAgeRestrictedGenres lists genres hidden from the children's view
	DefaultAgeRestrictedGenres = "Ужасы,Детективы"

	// DefaultPrompt is printed before every command in an interactive session
	DefaultPrompt = "> "
)

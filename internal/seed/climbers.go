// Package seed ships a built-in climber dataset so the app works with
// no database configured. Profiles are demo data; photos point at
// Wikimedia Commons and Unsplash.
package seed

import (
	"context"

	"github.com/kaelif/QuickLink/internal/models"
)

const wiki = "https://upload.wikimedia.org/wikipedia/commons"

// Source serves the built-in dataset through the same interface as the
// database repository.
type Source struct{}

func (Source) ListAll(_ context.Context) ([]models.ClimberProfile, error) {
	return Climbers(), nil
}

// Climbers returns a fresh copy of the seed dataset.
func Climbers() []models.ClimberProfile {
	return []models.ClimberProfile{
		{
			ID:            "1",
			FirstName:     "Alex",
			Age:           31,
			Location:      models.Location{Latitude: 37.7749, Longitude: -122.4194},
			ClimbingTypes: []models.ClimbingType{models.ClimbingSport, models.ClimbingBouldering},
			Bio:           "Sport and bouldering. Always down to try hard projects or just have a good session. Looking for reliable partners who want to push grades.",
			PhotoURLs: []string{
				wiki + "/thumb/2/2f/Action_Directe_11_%289a%29%2C_Foto_Jorgos_Megos.JPG/400px-Action_Directe_11_%289a%29%2C_Foto_Jorgos_Megos.JPG",
				"https://images.unsplash.com/photo-1522163182402-834f871fd851?w=400",
				"https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400",
			},
		},
		{
			ID:            "2",
			FirstName:     "Adam",
			Age:           32,
			Location:      models.Location{Latitude: 40.01499, Longitude: -105.27055},
			ClimbingTypes: []models.ClimbingType{models.ClimbingSport, models.ClimbingBouldering},
			Bio:           "Lead and boulder. Love long sport routes and hard boulders. Prefer early starts and full days at the crag.",
			PhotoURLs: []string{
				wiki + "/e/e3/Adam_Ondra_Climbing_WCh_2018.jpg",
				wiki + "/thumb/4/4e/Adam_Ondra_climbing_Silence,_9c_by_PAVEL_BLAZEK_1.jpg/400px-Adam_Ondra_climbing_Silence,_9c_by_PAVEL_BLAZEK_1.jpg",
				"https://images.unsplash.com/photo-1522163182402-834f871fd851?w=400",
			},
		},
		{
			ID:            "3",
			FirstName:     "Janja",
			Age:           26,
			Location:      models.Location{Latitude: 37.7749, Longitude: -122.41},
			ClimbingTypes: []models.ClimbingType{models.ClimbingSport, models.ClimbingBouldering},
			Bio:           "Competition and outdoor—lead and boulder. Happy to session projects or try new crags. Looking for partners who want to try hard and have fun.",
			PhotoURLs: []string{
				wiki + "/c/cc/Janja_Garnbret_SLO_2017-08-19_2267.jpg",
				wiki + "/b/b5/Climbing_World_Championships_2018_Boulder_Final_Garnbret_%28BT0A8080%29.jpg",
				wiki + "/thumb/c/cc/Janja_Garnbret_SLO_2017-08-19_2267.jpg/400px-Janja_Garnbret_SLO_2017-08-19_2267.jpg",
			},
		},
		{
			ID:            "4",
			FirstName:     "Chris",
			Age:           44,
			Location:      models.Location{Latitude: 37.7755, Longitude: -122.418},
			ClimbingTypes: []models.ClimbingType{models.ClimbingSport},
			Bio:           "Sport climbing. Decades on the rock—love long routes and hard projects. Down for deep water solo or classic sport. Prefer partners who want full days.",
			PhotoURLs: []string{
				"https://images.unsplash.com/photo-1522163182402-834f871fd851?w=400",
				"https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400",
				"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
			},
		},
		{
			ID:            "5",
			FirstName:     "Alex",
			Age:           40,
			Location:      models.Location{Latitude: 40.015, Longitude: -105.271},
			ClimbingTypes: []models.ClimbingType{models.ClimbingTrad},
			Bio:           "Trad and big wall. Prefer long multipitch and alpine objectives. Have a full rack. Looking for solid partners for long days in the mountains.",
			PhotoURLs: []string{
				"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
				"https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400",
				"https://images.unsplash.com/photo-1522163182402-834f871fd851?w=400",
			},
		},
		{
			ID:            "6",
			FirstName:     "Margo",
			Age:           27,
			Location:      models.Location{Latitude: 40.016, Longitude: -105.272},
			ClimbingTypes: []models.ClimbingType{models.ClimbingSport},
			Bio:           "Sport climbing. Love pushing on hard routes and exploring new crags. Looking for partners for weekend projects and weekday sessions.",
			PhotoURLs: []string{
				"https://images.unsplash.com/photo-1518611012118-696072aa579a?w=400",
				"https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=400",
				"https://images.unsplash.com/photo-1589939704324-884dfb8f1fd2?w=400",
			},
		},
		{
			ID:            "7",
			FirstName:     "Brooke",
			Age:           24,
			Location:      models.Location{Latitude: 47.6062, Longitude: -122.3321},
			ClimbingTypes: []models.ClimbingType{models.ClimbingSport, models.ClimbingBouldering},
			Bio:           "Sport and boulder. Comp and outdoor. Happy to session projects or try new areas. Looking for reliable partners for weekends and travel.",
			PhotoURLs: []string{
				"https://images.unsplash.com/photo-1518611012118-696072aa579a?w=400",
				"https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=400",
				"https://images.unsplash.com/photo-1589939704324-884dfb8f1fd2?w=400",
			},
		},
		{
			ID:            "8",
			FirstName:     "Stefano",
			Age:           32,
			Location:      models.Location{Latitude: 47.607, Longitude: -122.333},
			ClimbingTypes: []models.ClimbingType{models.ClimbingSport},
			Bio:           "Sport climbing. Love hard redpoints and long days at the crag. Looking for partners who want to try hard and enjoy the process.",
			PhotoURLs: []string{
				"https://images.unsplash.com/photo-1522163182402-834f871fd851?w=400",
				"https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400",
				"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
			},
		},
		{
			ID:            "9",
			FirstName:     "Nathaniel",
			Age:           28,
			Location:      models.Location{Latitude: 40.01499, Longitude: -105.27055},
			ClimbingTypes: []models.ClimbingType{models.ClimbingBouldering},
			Bio:           "Bouldering. Love sessioning projects and exploring new boulder fields. V15–V17 range. Down for long days or quick evening sessions.",
			PhotoURLs: []string{
				"https://images.unsplash.com/photo-1522163182402-834f871fd851?w=400",
				"https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400",
				"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
			},
		},
		{
			ID:            "10",
			FirstName:     "Tomoa",
			Age:           29,
			Location:      models.Location{Latitude: 37.7749, Longitude: -122.4194},
			ClimbingTypes: []models.ClimbingType{models.ClimbingBouldering},
			Bio:           "Bouldering and competition. Love hard boulders and trying new problems. Looking for partners to session with and share beta.",
			PhotoURLs: []string{
				"https://images.unsplash.com/photo-1522163182402-834f871fd851?w=400",
				"https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400",
				"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
			},
		},
	}
}

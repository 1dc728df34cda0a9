// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Package is a static travel offer from the catalog shown in the carousel.
type Package struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	LongDescription string `json:"longDescription"`
	Price           string `json:"price"`
	Image           string `json:"image"`
	Alt             string `json:"alt"`
}

var catalog = []Package{
	{
		ID:              1,
		Name:            "Pack Sudeste Asiático",
		Description:     "Vietnam, Camboya: buses, hostales y guía de visados",
		LongDescription: "Sumérgete en la aventura del sudeste Asiático con nuestro pack esencial para mochileros en Vietnam y Camboya. Este paquete te proporciona la base para un viaje inolvidable, diseñado para explorar a tu ritmo y con un presupuesto ajustado. Perfecto para mochileros que buscan la libertad de viajar de forma independiente, pero con las herramientas básicas de logística y la seguridad de tener alojamiento y documentación cubiertos. ¡Prepárate para la inmersión cultural, los templos milenarios y los paisajes que cortan la respiración!",
		Price:           "600€",
		Image:           "images/pack-asia.jpg",
		Alt:             "Backpacking in Southeast Asia",
	},
	{
		ID:              2,
		Name:            "Pack Ruta Inca",
		Description:     "Perú, Bolivia: trekking, alojamiento y transporte incluido",
		LongDescription: "Descubre la majestuosidad de los Andes con nuestro pack Ruta Inca. Recorre el legendario Camino Inca hasta Machu Picchu, explora el lago Titicaca y sumérgete en la rica cultura de Perú y Bolivia. Este paquete incluye guías expertos, alojamiento en refugios de montaña y transporte entre las principales ciudades. Ideal para aventureros que buscan experiencias auténticas en altitudes extremas y paisajes de montaña inolvidables.",
		Price:           "850€",
		Image:           "images/pack-inca.jpg",
		Alt:             "Inca Trail backpacking package",
	},
	{
		ID:              3,
		Name:            "Pack Europa del Este",
		Description:     "Polonia, República Checa, Hungría: trenes y hostales",
		LongDescription: "Explora la fascinante historia y cultura de Europa del Este con nuestro pack diseñado para mochileros. Visita Cracovia, Praga y Budapest con pases de tren incluidos y alojamiento en hostales céntricos. Descubre castillos medievales, arquitectura gótica y la vibrante vida nocturna de estas capitales. Perfecto para quienes buscan cultura, historia y una excelente relación calidad-precio en el corazón de Europa.",
		Price:           "720€",
		Image:           "images/pack-europe.jpg",
		Alt:             "Eastern Europe backpacking",
	},
	{
		ID:              4,
		Name:            "Pack África Oriental",
		Description:     "Tanzania, Kenia: safaris, camping y guías locales",
		LongDescription: "Vive la aventura africana definitiva con nuestro pack de safari en África Oriental. Explora los parques nacionales del Serengeti y Masai Mara, presencia la Gran Migración y acampa bajo las estrellas africanas. Incluye safaris guiados, camping en plena naturaleza, transporte 4x4 y guías locales expertos. Una experiencia única para los amantes de la vida salvaje y los paisajes épicos.",
		Price:           "1200€",
		Image:           "images/exp-africa.jpg",
		Alt:             "East Africa adventure package",
	},
	{
		ID:              5,
		Name:            "Pack Patagonia",
		Description:     "Argentina, Chile: refugios de montaña y trekkings épicos",
		LongDescription: "Conquista los paisajes más dramáticos del planeta con nuestro pack Patagonia. Recorre el Parque Nacional Torres del Paine, glaciares milenarios y montañas imponentes en la frontera argentino-chilena. Incluye alojamiento en refugios de montaña, trekkings guiados y transporte entre los principales puntos de interés. Ideal para mochileros experimentados que buscan naturaleza salvaje y desafíos físicos memorables.",
		Price:           "950€",
		Image:           "images/pack-patagonia.jpg",
		Alt:             "Patagonia trekking package",
	},
}

// Catalog returns a copy of the fixed package catalog in display order.
func Catalog() []Package {
	out := make([]Package, len(catalog))
	copy(out, catalog)
	return out
}

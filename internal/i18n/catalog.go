package i18n

var catalog = map[string]map[string]string{
	"pt": {
		"report_title":     "Relatório de Materiais",
		"summary":          "Resumo do Projeto",
		"structure_type":   "Tipo de Estrutura",
		"slab":             "Laje (Betão Armado)",
		"box":              "Viga / Pilar / Caixa",
		"area":             "Área",
		"total_volume":     "Volume Total Estimado",
		"mix":              "Traço Configurado (Referência 1m³)",
		"materials":        "Quantidades de Materiais",
		"material":         "Material",
		"quantity":         "Quantidade Estimada",
		"unit":             "Unidade",
		"notes":            "Observações",
		"cement":           "Cimento Portland",
		"sand":             "Areia (Média/Lavada)",
		"gravel":           "Brita / Inertes",
		"water":            "Água",
		"steel":            "Aço Total (Armadura)",
		"bags":             "sacos",
		"gravel_note":      "Calibre 12/24",
		"water_note":       "Fator a/c ~0.5",
		"steel_note":       "A400 / A500 NR",
		"steel_detail":     "Detalhe de Armadura",
		"slab_mesh":        "Malha de Laje",
		"beam_pillar":      "Viga / Pilar",
		"mesh":             "Malha (Inf/Sup)",
		"distribution":     "Distribuição / Cavaletes",
		"longitudinal":     "Longitudinal (Varões)",
		"stirrups":         "Estribos (Cinta)",
		"estimated_cost":   "Custo Estimado",
		"disclaimer_title": "Aviso Legal:",
		"disclaimer_text":  "Os valores apresentados são estimativas e não substituem o cálculo de um engenheiro responsável.",
		"generated_by":     "Gerado por",
		"generated_at":     "Gerado em",
	},
	"en": {
		"report_title":     "Materials Report",
		"summary":          "Project Summary",
		"structure_type":   "Structure Type",
		"slab":             "Slab (Reinforced Concrete)",
		"box":              "Beam / Pillar / Box",
		"area":             "Area",
		"total_volume":     "Estimated Total Volume",
		"mix":              "Configured Mix (per 1m³)",
		"materials":        "Material Quantities",
		"material":         "Material",
		"quantity":         "Estimated Quantity",
		"unit":             "Unit",
		"notes":            "Notes",
		"cement":           "Portland Cement",
		"sand":             "Sand (Medium/Washed)",
		"gravel":           "Gravel / Aggregate",
		"water":            "Water",
		"steel":            "Total Steel (Rebar)",
		"bags":             "bags",
		"gravel_note":      "Size 12/24",
		"water_note":       "w/c ratio ~0.5",
		"steel_note":       "A400 / A500 NR",
		"steel_detail":     "Reinforcement Detail",
		"slab_mesh":        "Slab Mesh",
		"beam_pillar":      "Beam / Pillar",
		"mesh":             "Mesh (Bottom/Top)",
		"distribution":     "Distribution / Chairs",
		"longitudinal":     "Longitudinal (Bars)",
		"stirrups":         "Stirrups (Ties)",
		"estimated_cost":   "Estimated Cost",
		"disclaimer_title": "Disclaimer:",
		"disclaimer_text":  "Figures are estimates and do not replace calculations by a licensed engineer.",
		"generated_by":     "Generated by",
		"generated_at":     "Generated at",
	},
	"fr": {
		"report_title":     "Rapport de Matériaux",
		"summary":          "Résumé du Projet",
		"structure_type":   "Type de Structure",
		"slab":             "Dalle (Béton Armé)",
		"box":              "Poutre / Poteau / Caisson",
		"area":             "Surface",
		"total_volume":     "Volume Total Estimé",
		"mix":              "Dosage Configuré (pour 1m³)",
		"materials":        "Quantités de Matériaux",
		"material":         "Matériau",
		"quantity":         "Quantité Estimée",
		"unit":             "Unité",
		"notes":            "Remarques",
		"cement":           "Ciment Portland",
		"sand":             "Sable (Moyen/Lavé)",
		"gravel":           "Gravier / Granulats",
		"water":            "Eau",
		"steel":            "Acier Total (Armature)",
		"bags":             "sacs",
		"gravel_note":      "Calibre 12/24",
		"water_note":       "Rapport e/c ~0.5",
		"steel_note":       "A400 / A500 NR",
		"steel_detail":     "Détail d'Armature",
		"slab_mesh":        "Treillis de Dalle",
		"beam_pillar":      "Poutre / Poteau",
		"mesh":             "Treillis (Inf/Sup)",
		"distribution":     "Répartition / Chaises",
		"longitudinal":     "Longitudinal (Barres)",
		"stirrups":         "Étriers (Cadres)",
		"estimated_cost":   "Coût Estimé",
		"disclaimer_title": "Avertissement :",
		"disclaimer_text":  "Les valeurs sont des estimations et ne remplacent pas le calcul d'un ingénieur qualifié.",
		"generated_by":     "Généré par",
		"generated_at":     "Généré le",
	},
	"es": {
		"report_title":     "Informe de Materiales",
		"summary":          "Resumen del Proyecto",
		"structure_type":   "Tipo de Estructura",
		"slab":             "Losa (Hormigón Armado)",
		"box":              "Viga / Pilar / Caja",
		"area":             "Área",
		"total_volume":     "Volumen Total Estimado",
		"mix":              "Dosificación Configurada (por 1m³)",
		"materials":        "Cantidades de Materiales",
		"material":         "Material",
		"quantity":         "Cantidad Estimada",
		"unit":             "Unidad",
		"notes":            "Observaciones",
		"cement":           "Cemento Portland",
		"sand":             "Arena (Media/Lavada)",
		"gravel":           "Grava / Áridos",
		"water":            "Agua",
		"steel":            "Acero Total (Armadura)",
		"bags":             "sacos",
		"gravel_note":      "Calibre 12/24",
		"water_note":       "Relación a/c ~0.5",
		"steel_note":       "A400 / A500 NR",
		"steel_detail":     "Detalle de Armadura",
		"slab_mesh":        "Malla de Losa",
		"beam_pillar":      "Viga / Pilar",
		"mesh":             "Malla (Inf/Sup)",
		"distribution":     "Distribución / Caballetes",
		"longitudinal":     "Longitudinal (Barras)",
		"stirrups":         "Estribos",
		"estimated_cost":   "Coste Estimado",
		"disclaimer_title": "Aviso Legal:",
		"disclaimer_text":  "Los valores son estimaciones y no sustituyen el cálculo de un ingeniero responsable.",
		"generated_by":     "Generado por",
		"generated_at":     "Generado el",
	},
}

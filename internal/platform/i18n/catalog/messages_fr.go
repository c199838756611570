package catalog

var frFR = map[string]string{
	"wizard.title":                    "Créer votre compte",
	"wizard.step.username.title":      "Nom d'utilisateur",
	"wizard.step.username.edit_title": "Modifier le nom d'utilisateur",
	"wizard.step.email.title":         "Adresse email",
	"wizard.step.email.edit_title":    "Modifier l'adresse email",
	"wizard.step.password.title":      "Mot de passe",
	"wizard.step.password.edit_title": "Modifier le mot de passe",
	"wizard.step.confirm.title":       "Confirmer le mot de passe",
	"wizard.step.progress":            "Étape %d sur %d",
	"wizard.field.username":           "Nom d'utilisateur",
	"wizard.field.email":              "Adresse email",
	"wizard.field.password":           "Mot de passe",
	"wizard.field.confirm":            "Confirmer le mot de passe",
	"wizard.action.next":              "Suivant",
	"wizard.action.confirm":           "Valider",
	"wizard.action.edit":              "Modifier",
	"wizard.action.restart":           "Recommencer",
	"wizard.summary.heading":          "Vos informations",
	"wizard.error.required":           "Ce champ est obligatoire.",
	"wizard.error.email":              "Adresse email invalide.",
	"wizard.error.too_long":           "Cette valeur est trop longue.",
	"wizard.error.password_mismatch":  "Les mots de passe ne correspondent pas.",
	"wizard.notice.complete":          "Inscription effectuée avec succès.",
	"wizard.notice.restart":           "Inscription introuvable. Merci de recommencer.",
	"wizard.complete.title":           "Bienvenue",
	"wizard.complete.body":            "Le compte %s a été créé.",
	"error.not_found.title":           "Page introuvable",
	"error.not_found.body":            "La page demandée n'existe pas.",
	"error.forbidden.title":           "Requête refusée",
	"error.forbidden.body":            "Ce formulaire doit être envoyé depuis ce site.",
	"error.internal.title":            "Une erreur est survenue",
	"error.internal.body":             "Votre demande n'a pas pu être traitée. Merci de réessayer.",
	"nav.lang_en":                     "English",
	"nav.lang_fr":                     "Français",
}

package validators

// Messages shown to the user. The wording matches the booking site.
const (
	MsgLoginFieldsRequired = "Por favor, completa todos los campos."

	MsgNameTooShort          = "El nombre debe tener al menos 3 caracteres."
	MsgLastNameTwoWords      = "Los apellidos deben tener al menos dos palabras."
	MsgLastNameWordTooShort  = "Cada apellido debe tener al menos 3 caracteres."
	MsgEmailInvalid          = "El formato del correo electrónico no es válido."
	MsgEmailMismatch         = "Los dos correos deben ser iguales."
	MsgBirthDateInFuture     = "La fecha de nacimiento no puede estar en el futuro."
	MsgBirthDateInvalid      = "La fecha de nacimiento no es válida."
	MsgTooYoung              = "Debes tener 13 años o más."
	MsgUsernameTooShort      = "El nombre de usuario debe tener al menos 5 caracteres."
	MsgUsernameTaken         = "Este nombre de usuario ya está en uso."
	MsgProfileImageFormat    = "La imagen debe tener un formato válido: webp, png o jpg."
	MsgPasswordLength        = "La contraseña debe tener 8 caracteres o más."
	MsgPasswordDigits        = "La contraseña debe tener 2 números o más."
	MsgPasswordSpecial       = "La contraseña debe contener al menos 1 carácter especial."
	MsgPasswordUppercase     = "La contraseña debe contener al menos 1 letra mayúscula."
	MsgPasswordLowercase     = "La contraseña debe contener al menos 1 letra minúscula."
	MsgPaymentFullName       = "• El nombre completo debe tener al menos 3 caracteres."
	MsgPaymentEmail          = "• El formato del correo electrónico no es válido (debe ser nombre@dominio.extensión)."
	MsgPaymentCardType       = "• Debes seleccionar un tipo de tarjeta."
	MsgPaymentCardLength     = "• El número de tarjeta debe tener 13, 15, 16 o 19 dígitos."
	MsgPaymentCardDigits     = "• El número de tarjeta solo debe contener dígitos."
	MsgPaymentCardholder     = "• El nombre del titular debe tener al menos 3 caracteres."
	MsgPaymentExpiryRequired = "• Debes seleccionar una fecha de caducidad."
	MsgPaymentExpiryPast     = "• La fecha de caducidad debe ser una fecha futura."
	MsgPaymentCVVLength      = "• El CVV debe tener exactamente 3 dígitos."
	MsgPaymentCVVDigits      = "• El CVV solo debe contener números."
	MsgTipTitleTooShort      = "El título debe tener al menos 15 caracteres."
	MsgTipDescriptionShort   = "La descripción debe tener al menos 30 caracteres."
)

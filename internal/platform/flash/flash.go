// Package flash implementa mensajes one-shot vía cookie: se escriben en el
// redirect y se consumen (y borran) en el request siguiente. No hay estado
// en el servidor, el mensaje viaja completo en la cookie.
package flash

import (
	"net/http"
	"net/url"
)

const cookieName = "vc_flash"

// Set deja el mensaje en una cookie de sesión para el próximo request.
func Set(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
	})
}

// Take devuelve el mensaje pendiente y lo expira. Devuelve "" si no hay.
func Take(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	msg, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return msg
}

package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/notejam/internal/domain"
	authsvc "github.com/heartmarshall/notejam/internal/service/auth"
	"github.com/heartmarshall/notejam/internal/transport/middleware"
	"github.com/heartmarshall/notejam/pkg/ctxutil"
)

func (h *Handler) signupForm(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, http.StatusOK, viewSignup, "Sign Up", nil)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.showForm(w, r, viewSignup, "Sign Up", nil, []string{"Invalid form."})
		return
	}

	_, err := h.auth.Register(r.Context(), authsvc.RegisterInput{
		Email:           r.PostForm.Get("email"),
		Password:        r.PostForm.Get("password"),
		ConfirmPassword: r.PostForm.Get("confirm_password"),
	})
	if err != nil {
		if msgs, ok := formMessages(err); ok {
			h.showForm(w, r, viewSignup, "Sign Up", nil, msgs)
			return
		}
		h.handleError(w, r, err)
		return
	}

	h.redirect(w, r, "/signin", success("User successfully created. Now you can sign in."))
}

func (h *Handler) signinForm(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, http.StatusOK, viewSignin, "Sign In", nil)
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirect(w, r, "/signin", failure(authsvc.InvalidCredentialsMessage))
		return
	}

	res, err := h.auth.SignIn(r.Context(), authsvc.SignInInput{
		Email:         r.PostForm.Get("email"),
		Password:      r.PostForm.Get("password"),
		PreviousToken: h.sessionToken(r),
	})
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			h.redirect(w, r, "/signin", failure(ve.Messages()[0]))
		case errors.Is(err, domain.ErrInvalidCredentials):
			h.redirect(w, r, "/signin", failure(authsvc.InvalidCredentialsMessage))
		default:
			h.handleError(w, r, err)
		}
		return
	}

	middleware.SetSessionCookie(w, h.opts.SessionCookie, res.Token, h.opts.SecureCookies)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) signout(w http.ResponseWriter, r *http.Request) {
	if _, err := h.auth.SignOut(r.Context(), h.sessionToken(r)); err != nil {
		h.log.WarnContext(r.Context(), "sign out", slog.String("error", err.Error()))
	}
	middleware.ClearSessionCookie(w, h.opts.SessionCookie, h.opts.SecureCookies)
	http.Redirect(w, r, "/signin", http.StatusFound)
}

func (h *Handler) settingsForm(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, http.StatusOK, viewSettings, "Account Settings", nil)
}

func (h *Handler) settings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.showForm(w, r, viewSettings, "Account Settings", nil, []string{"Invalid form."})
		return
	}

	ctx := ctxutil.WithUserID(r.Context(), currentUser(r).ID)
	err := h.auth.ChangePassword(ctx, authsvc.ChangePasswordInput{
		CurrentPassword: r.PostForm.Get("password"),
		NewPassword:     r.PostForm.Get("new_password"),
		ConfirmPassword: r.PostForm.Get("confirm_new_password"),
	})
	if err != nil {
		if msgs, ok := formMessages(err); ok {
			h.showForm(w, r, viewSettings, "Account Settings", nil, msgs)
			return
		}
		h.handleError(w, r, err)
		return
	}

	h.redirect(w, r, "/", success("Password successfully updated."))
}

func (h *Handler) forgotForm(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, http.StatusOK, viewForgot, "Forgot Password?", nil)
}

func (h *Handler) forgot(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.showForm(w, r, viewForgot, "Forgot Password?", nil, []string{"Invalid form."})
		return
	}

	if err := h.auth.ForgotPassword(r.Context(), r.PostForm.Get("email")); err != nil {
		if msgs, ok := formMessages(err); ok {
			h.showForm(w, r, viewForgot, "Forgot Password?", nil, msgs)
			return
		}
		h.handleError(w, r, err)
		return
	}

	// Same answer for known and unknown addresses.
	h.redirect(w, r, "/signin", success("A new password has been sent to your email."))
}

package http

import "taskboard/pkg/supabase"

// --- Request DTOs ---

type credentialsReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// --- Response DTOs ---

type sessionResp struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int      `json:"expires_in"`
	User        userResp `json:"user"`
}

type userResp struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func newSessionResp(sess *supabase.Session) sessionResp {
	return sessionResp{
		AccessToken: sess.AccessToken,
		TokenType:   sess.TokenType,
		ExpiresIn:   sess.ExpiresIn,
		User: userResp{
			ID:    sess.User.ID,
			Email: sess.User.Email,
		},
	}
}

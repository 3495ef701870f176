// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// APIResponse is the envelope every remote API response shares.
type APIResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the authenticated identity returned by POST /login.
type LoginResult struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}

// LoginResponse is the full response of POST /login.
type LoginResponse struct {
	APIResponse
	LoginResult LoginResult `json:"loginResult"`
}

// StoryListResponse is the response of GET /stories.
type StoryListResponse struct {
	APIResponse
	ListStory []Story `json:"listStory"`
}

// StoryResponse is the response of GET /stories/{id}.
type StoryResponse struct {
	APIResponse
	Story Story `json:"story"`
}
